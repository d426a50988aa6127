// Package replica holds the vocabulary shared by the local store, the remote
// replica and the sync coordinator: table names, records, snapshots and change events.
package replica

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"
)

type Table string

const (
	Rooms        Table = roomModel.TableName
	Guests       Table = guestModel.TableName
	Bookings     Table = bookingModel.TableName
	Transactions Table = transactionModel.TableName
	Settings     Table = settingsModel.TableName
	Groups       Table = groupModel.TableName
)

// Tables lists every replicated table. Settings comes first so a snapshot
// is never applied without the record that marks a replica as populated.
var Tables = []Table{Settings, Rooms, Guests, Bookings, Transactions, Groups}

var (
	ErrUnknownTable    = errors.New("unknown table")
	ErrSettingsRecord  = errors.New("settings are not an id-keyed record")
	ErrMismatchedTable = errors.New("record does not belong to table")
)

func ParseTable(name string) (Table, error) {
	for _, table := range Tables {
		if string(table) == name {
			return table, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownTable, name)
}

// Record is a row of an id-keyed table.
type Record interface {
	RecordID() string
}

// TableOf returns the table a record belongs to.
func TableOf(record Record) (Table, error) {
	switch record.(type) {
	case roomModel.Room, *roomModel.Room:
		return Rooms, nil
	case guestModel.Guest, *guestModel.Guest:
		return Guests, nil
	case bookingModel.Booking, *bookingModel.Booking:
		return Bookings, nil
	case transactionModel.Transaction, *transactionModel.Transaction:
		return Transactions, nil
	case groupModel.GroupProfile, *groupModel.GroupProfile:
		return Groups, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownTable, record)
	}
}

// CheckTable verifies every record belongs to table.
func CheckTable(table Table, records ...Record) error {
	for _, record := range records {
		owner, err := TableOf(record)
		if err != nil {
			return err
		}

		if owner != table {
			return fmt.Errorf("%w: %s record %s in %s", ErrMismatchedTable, owner, record.RecordID(), table)
		}
	}

	return nil
}

// Decode unmarshals raw into the record type of table.
func Decode(table Table, unmarshal func([]byte, any) error, raw []byte) (Record, error) {
	switch table {
	case Rooms:
		var record roomModel.Room
		err := unmarshal(raw, &record)

		return record, err
	case Guests:
		var record guestModel.Guest
		err := unmarshal(raw, &record)

		return record, err
	case Bookings:
		var record bookingModel.Booking
		err := unmarshal(raw, &record)

		return record, err
	case Transactions:
		var record transactionModel.Transaction
		err := unmarshal(raw, &record)

		return record, err
	case Groups:
		var record groupModel.GroupProfile
		err := unmarshal(raw, &record)

		return record, err
	case Settings:
		return nil, ErrSettingsRecord
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
}

// DecodeJSON is Decode with encoding/json.
func DecodeJSON(table Table, raw []byte) (Record, error) {
	return Decode(table, json.Unmarshal, raw)
}

// Snapshot is the full content of the six tables.
type Snapshot struct {
	Settings     *settingsModel.HostelSettings  `json:"settings"`
	Rooms        []roomModel.Room               `json:"rooms"`
	Guests       []guestModel.Guest             `json:"guests"`
	Bookings     []bookingModel.Booking         `json:"bookings"`
	Transactions []transactionModel.Transaction `json:"transactions"`
	Groups       []groupModel.GroupProfile      `json:"groups"`
}

// Empty reports whether the snapshot carries no settings and no rows.
func (s Snapshot) Empty() bool {
	return s.Settings == nil &&
		len(s.Rooms) == 0 &&
		len(s.Guests) == 0 &&
		len(s.Bookings) == 0 &&
		len(s.Transactions) == 0 &&
		len(s.Groups) == 0
}

// Records returns the rows of an id-keyed table.
func (s Snapshot) Records(table Table) []Record {
	var records []Record

	switch table {
	case Rooms:
		for _, r := range s.Rooms {
			records = append(records, r)
		}
	case Guests:
		for _, r := range s.Guests {
			records = append(records, r)
		}
	case Bookings:
		for _, r := range s.Bookings {
			records = append(records, r)
		}
	case Transactions:
		for _, r := range s.Transactions {
			records = append(records, r)
		}
	case Groups:
		for _, r := range s.Groups {
			records = append(records, r)
		}
	case Settings:
	}

	return records
}

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// ChangeEvent is one row change on the realtime feed. New carries the row
// after INSERT/UPDATE, Old carries at least the id for DELETE.
type ChangeEvent struct {
	Table     Table           `json:"table"`
	EventType EventType       `json:"eventType"`
	New       json.RawMessage `json:"new,omitempty"`
	Old       json.RawMessage `json:"old,omitempty"`
	Origin    string          `json:"origin,omitempty"`
	EmittedAt time.Time       `json:"emittedAt"`
}

type idOnly struct {
	ID string `json:"id"`
}

// OldID returns the id carried by Old, falling back to New.
func (e ChangeEvent) OldID() (string, error) {
	for _, raw := range []json.RawMessage{e.Old, e.New} {
		if len(raw) == 0 {
			continue
		}

		var row idOnly
		if err := json.Unmarshal(raw, &row); err != nil {
			return "", fmt.Errorf("failed to decode event id: %w", err)
		}

		if row.ID != "" {
			return row.ID, nil
		}
	}

	return "", errors.New("change event carries no id")
}

// NewUpsertEvent builds the event emitted after a row was written.
func NewUpsertEvent(table Table, inserted bool, row any, origin string, at time.Time) (ChangeEvent, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return ChangeEvent{}, fmt.Errorf("failed to encode change event: %w", err)
	}

	eventType := EventUpdate
	if inserted {
		eventType = EventInsert
	}

	return ChangeEvent{
		Table:     table,
		EventType: eventType,
		New:       raw,
		Origin:    origin,
		EmittedAt: at,
	}, nil
}

// NewDeleteEvent builds the event emitted after a row was removed.
func NewDeleteEvent(table Table, id, origin string, at time.Time) ChangeEvent {
	raw, _ := json.Marshal(idOnly{ID: id})

	return ChangeEvent{
		Table:     table,
		EventType: EventDelete,
		Old:       raw,
		Origin:    origin,
		EmittedAt: at,
	}
}
