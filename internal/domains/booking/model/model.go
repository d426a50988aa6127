package model

import (
	"hotelsphere/shared/jsonb"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID      = "id"
	FieldRoomID  = "room_id"
	FieldGuestID = "guest_id"
	FieldGroupID = "group_id"
	FieldStatus  = "status"
)

type Status string

const (
	StatusReserved  Status = "RESERVED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusReserved, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanMoveTo reports whether the lifecycle allows the transition. Statuses
// move forward only, with RESERVED to CANCELLED as the single side exit.
func (s Status) CanMoveTo(next Status) bool {
	if s == next {
		return true
	}

	switch s {
	case StatusReserved:
		return next == StatusActive || next == StatusCancelled || next == StatusCompleted
	case StatusActive:
		return next == StatusCompleted
	default:
		return false
	}
}

type Charge struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
}

type Payment struct {
	ID      string `json:"id"`
	Amount  int64  `json:"amount"`
	Date    string `json:"date"`
	Method  string `json:"method"`
	Remarks string `json:"remarks"`
}

type Occupant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	IDNumber  string    `json:"idNumber,omitempty"`
	Documents jsonb.Map `json:"documents,omitempty"`
}

// Booking amounts (BasePrice, Discount, charges, payments) are minor currency units.
// Dates are YYYY-MM-DD and times HH:MM.
type Booking struct {
	ID             string               `json:"id"                       db:"id"`
	BookingNo      string               `json:"bookingNo"                db:"booking_no"`
	RoomID         string               `json:"roomId"                   db:"room_id"`
	GuestID        string               `json:"guestId"                  db:"guest_id"`
	GroupID        string               `json:"groupId,omitempty"        db:"group_id"`
	CheckInDate    string               `json:"checkInDate"              db:"check_in_date"`
	CheckInTime    string               `json:"checkInTime"              db:"check_in_time"`
	CheckOutDate   string               `json:"checkOutDate"             db:"check_out_date"`
	CheckOutTime   string               `json:"checkOutTime"             db:"check_out_time"`
	Status         Status               `json:"status"                   db:"status"`
	Charges        jsonb.List[Charge]   `json:"charges"                  db:"charges"`
	Payments       jsonb.List[Payment]  `json:"payments"                 db:"payments"`
	BasePrice      int64                `json:"basePrice"                db:"base_price"`
	Discount       int64                `json:"discount"                 db:"discount"`
	Purpose        string               `json:"purpose,omitempty"        db:"purpose"`
	MealPlan       string               `json:"mealPlan,omitempty"       db:"meal_plan"`
	Agent          string               `json:"agent,omitempty"          db:"agent"`
	Adults         int                  `json:"adults,omitempty"         db:"adults"`
	Children       int                  `json:"children,omitempty"       db:"children"`
	Kids           int                  `json:"kids,omitempty"           db:"kids"`
	Others         int                  `json:"others,omitempty"         db:"others"`
	TotalPax       int                  `json:"totalPax,omitempty"       db:"total_pax"`
	ExtraBed       bool                 `json:"extraBed,omitempty"       db:"extra_bed"`
	ExtraOccupants jsonb.List[Occupant] `json:"extraOccupants,omitempty" db:"extra_occupants"`
}

func (b Booking) RecordID() string {
	return b.ID
}

// Covers reports whether date falls within [CheckInDate, CheckOutDate].
func (b Booking) Covers(date string) bool {
	return b.CheckInDate <= date && date <= b.CheckOutDate
}

func (b Booking) TotalCharges() int64 {
	var total int64
	for _, charge := range b.Charges {
		total += charge.Amount
	}

	return total
}

func (b Booking) TotalPayments() int64 {
	var total int64
	for _, payment := range b.Payments {
		total += payment.Amount
	}

	return total
}
