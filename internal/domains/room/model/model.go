package model

import "hotelsphere/shared/jsonb"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldFloor  = "floor"
	FieldStatus = "status"
)

type Status string

const (
	StatusVacant     Status = "VACANT"
	StatusOccupied   Status = "OCCUPIED"
	StatusReserved   Status = "RESERVED"
	StatusDirty      Status = "DIRTY"
	StatusRepair     Status = "REPAIR"
	StatusManagement Status = "MANAGEMENT"
	StatusStaffBlock Status = "STAFF_BLOCK"
)

// Housekeeping reports whether the status is operator-set and survives
// the absence of a covering booking.
func (s Status) Housekeeping() bool {
	switch s {
	case StatusDirty, StatusRepair, StatusManagement, StatusStaffBlock:
		return true
	default:
		return false
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusVacant, StatusOccupied, StatusReserved:
		return true
	default:
		return s.Housekeeping()
	}
}

type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Room prices are nightly amounts in minor currency units.
type Room struct {
	ID               string                    `json:"id"                         db:"id"`
	Number           string                    `json:"number"                     db:"number"`
	Floor            int                       `json:"floor"                      db:"floor"`
	Type             string                    `json:"type"                       db:"type"`
	Price            int64                     `json:"price"                      db:"price"`
	Status           Status                    `json:"status"                     db:"status"`
	CurrentBookingID string                    `json:"currentBookingId,omitempty" db:"current_booking_id"`
	Inventory        jsonb.List[InventoryItem] `json:"inventory,omitempty"        db:"inventory"`
}

func (r Room) RecordID() string {
	return r.ID
}
