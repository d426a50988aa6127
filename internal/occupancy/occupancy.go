// Package occupancy derives a room's effective status from the bookings that
// cover a reference date. Stored occupancy states are never trusted.
package occupancy

import (
	"cmp"
	"hotelsphere/shared/timezone"
	"slices"

	bookingModel "hotelsphere/internal/domains/booking/model"
	roomModel "hotelsphere/internal/domains/room/model"
)

// Today is the reference date in the property's timezone.
func Today() string {
	return timezone.Today()
}

func covering(roomID string, bookings []bookingModel.Booking, date string, status bookingModel.Status) (bookingModel.Booking, bool) {
	for _, booking := range bookings {
		if booking.RoomID == roomID && booking.Status == status && booking.Covers(date) {
			return booking, true
		}
	}

	return bookingModel.Booking{}, false
}

// CoveringBooking returns the ACTIVE booking of the room on date, else the RESERVED one.
func CoveringBooking(room roomModel.Room, bookings []bookingModel.Booking, date string) (bookingModel.Booking, bool) {
	if booking, ok := covering(room.ID, bookings, date, bookingModel.StatusActive); ok {
		return booking, true
	}

	return covering(room.ID, bookings, date, bookingModel.StatusReserved)
}

// Resolve returns the status shown for room on date. Occupancy beats
// housekeeping, housekeeping beats VACANT, and stale OCCUPIED/RESERVED
// values with no covering booking fall back to VACANT.
func Resolve(room roomModel.Room, bookings []bookingModel.Booking, date string) roomModel.Status {
	if _, ok := covering(room.ID, bookings, date, bookingModel.StatusActive); ok {
		return roomModel.StatusOccupied
	}

	if _, ok := covering(room.ID, bookings, date, bookingModel.StatusReserved); ok {
		return roomModel.StatusReserved
	}

	if room.Status.Housekeeping() {
		return room.Status
	}

	return roomModel.StatusVacant
}

type Summary struct {
	Total    int `json:"total"`
	Vacant   int `json:"vacant"`
	Occupied int `json:"occupied"`
	Reserved int `json:"reserved"`
	Dirty    int `json:"dirty"`
	Repair   int `json:"repair"`
}

func indexByRoom(bookings []bookingModel.Booking) map[string][]bookingModel.Booking {
	index := make(map[string][]bookingModel.Booking, len(bookings))
	for _, booking := range bookings {
		index[booking.RoomID] = append(index[booking.RoomID], booking)
	}

	return index
}

// Summarize counts rooms per effective status on date.
func Summarize(rooms []roomModel.Room, bookings []bookingModel.Booking, date string) Summary {
	byRoom := indexByRoom(bookings)
	summary := Summary{Total: len(rooms)}

	for _, room := range rooms {
		switch Resolve(room, byRoom[room.ID], date) {
		case roomModel.StatusVacant:
			summary.Vacant++
		case roomModel.StatusOccupied:
			summary.Occupied++
		case roomModel.StatusReserved:
			summary.Reserved++
		case roomModel.StatusDirty:
			summary.Dirty++
		case roomModel.StatusRepair:
			summary.Repair++
		case roomModel.StatusManagement, roomModel.StatusStaffBlock:
		}
	}

	return summary
}

type RoomView struct {
	roomModel.Room
	Effective roomModel.Status `json:"effectiveStatus"`
	BookingID string           `json:"bookingId,omitempty"`
	GuestID   string           `json:"guestId,omitempty"`
	GroupID   string           `json:"groupId,omitempty"`
}

type Floor struct {
	Floor int        `json:"floor"`
	Rooms []RoomView `json:"rooms"`
}

// Grid lays rooms out by floor, ascending, each floor ordered by room number.
func Grid(rooms []roomModel.Room, bookings []bookingModel.Booking, date string) []Floor {
	byRoom := indexByRoom(bookings)
	byFloor := map[int][]RoomView{}

	for _, room := range rooms {
		view := RoomView{
			Room:      room,
			Effective: Resolve(room, byRoom[room.ID], date),
		}

		if booking, ok := CoveringBooking(room, byRoom[room.ID], date); ok {
			view.BookingID = booking.ID
			view.GuestID = booking.GuestID
			view.GroupID = booking.GroupID
		}

		byFloor[room.Floor] = append(byFloor[room.Floor], view)
	}

	floors := make([]Floor, 0, len(byFloor))
	for floor, views := range byFloor {
		slices.SortFunc(views, func(a, b RoomView) int {
			return cmp.Or(cmp.Compare(len(a.Number), len(b.Number)), cmp.Compare(a.Number, b.Number))
		})

		floors = append(floors, Floor{Floor: floor, Rooms: views})
	}

	slices.SortFunc(floors, func(a, b Floor) int {
		return cmp.Compare(a.Floor, b.Floor)
	})

	return floors
}
