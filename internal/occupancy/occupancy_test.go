package occupancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "hotelsphere/internal/domains/booking/model"
	roomModel "hotelsphere/internal/domains/room/model"
	"hotelsphere/internal/occupancy"
)

const today = "2024-01-02"

func booking(id, roomID string, status bookingModel.Status, in, out string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:           id,
		RoomID:       roomID,
		GuestID:      "g-" + id,
		Status:       status,
		CheckInDate:  in,
		CheckOutDate: out,
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		stored   roomModel.Status
		bookings []bookingModel.Booking
		want     roomModel.Status
	}{
		{
			name:     "active booking beats dirty",
			stored:   roomModel.StatusDirty,
			bookings: []bookingModel.Booking{booking("b1", "101", bookingModel.StatusActive, "2024-01-01", "2024-01-03")},
			want:     roomModel.StatusOccupied,
		},
		{
			name:     "check-out day is still covered",
			stored:   roomModel.StatusVacant,
			bookings: []bookingModel.Booking{booking("b1", "101", bookingModel.StatusActive, "2023-12-30", today)},
			want:     roomModel.StatusOccupied,
		},
		{
			name:     "reservation covering today",
			stored:   roomModel.StatusVacant,
			bookings: []bookingModel.Booking{booking("b1", "101", bookingModel.StatusReserved, today, "2024-01-05")},
			want:     roomModel.StatusReserved,
		},
		{
			name: "active wins over reserved",
			bookings: []bookingModel.Booking{
				booking("b1", "101", bookingModel.StatusReserved, today, "2024-01-05"),
				booking("b2", "101", bookingModel.StatusActive, "2024-01-01", today),
			},
			want: roomModel.StatusOccupied,
		},
		{
			name:     "future reservation does not count",
			stored:   roomModel.StatusVacant,
			bookings: []bookingModel.Booking{booking("b1", "101", bookingModel.StatusReserved, "2024-02-01", "2024-02-03")},
			want:     roomModel.StatusVacant,
		},
		{
			name:   "repair survives without booking",
			stored: roomModel.StatusRepair,
			want:   roomModel.StatusRepair,
		},
		{
			name:   "stale occupied falls back to vacant",
			stored: roomModel.StatusOccupied,
			want:   roomModel.StatusVacant,
		},
		{
			name:   "stale reserved falls back to vacant",
			stored: roomModel.StatusReserved,
			want:   roomModel.StatusVacant,
		},
		{
			name:     "completed booking leaves housekeeping state",
			stored:   roomModel.StatusDirty,
			bookings: []bookingModel.Booking{booking("b1", "101", bookingModel.StatusCompleted, "2024-01-01", "2024-01-03")},
			want:     roomModel.StatusDirty,
		},
		{
			name:     "other room's booking is ignored",
			stored:   roomModel.StatusStaffBlock,
			bookings: []bookingModel.Booking{booking("b1", "102", bookingModel.StatusActive, "2024-01-01", "2024-01-03")},
			want:     roomModel.StatusStaffBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := roomModel.Room{ID: "101", Number: "101", Status: tt.stored}
			assert.Equal(t, tt.want, occupancy.Resolve(room, tt.bookings, today))
		})
	}
}

func TestCoveringBooking(t *testing.T) {
	room := roomModel.Room{ID: "101"}
	bookings := []bookingModel.Booking{
		booking("b1", "101", bookingModel.StatusReserved, today, today),
		booking("b2", "101", bookingModel.StatusActive, "2024-01-01", today),
		booking("b3", "101", bookingModel.StatusCancelled, "2024-01-01", today),
	}

	found, ok := occupancy.CoveringBooking(room, bookings, today)
	require.True(t, ok)
	assert.Equal(t, "b2", found.ID)

	_, ok = occupancy.CoveringBooking(room, bookings, "2024-03-01")
	assert.False(t, ok)
}

func TestSummarizeAndGrid(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "110", Number: "110", Floor: 1, Status: roomModel.StatusVacant},
		{ID: "102", Number: "102", Floor: 1, Status: roomModel.StatusDirty},
		{ID: "201", Number: "201", Floor: 2, Status: roomModel.StatusRepair},
		{ID: "202", Number: "202", Floor: 2, Status: roomModel.StatusOccupied},
		{ID: "101", Number: "101", Floor: 1, Status: roomModel.StatusVacant},
		{ID: "301", Number: "301", Floor: 3, Status: roomModel.StatusManagement},
	}
	bookings := []bookingModel.Booking{
		booking("b1", "101", bookingModel.StatusActive, "2024-01-01", "2024-01-03"),
		booking("b2", "110", bookingModel.StatusReserved, today, "2024-01-04"),
	}

	summary := occupancy.Summarize(rooms, bookings, today)
	assert.Equal(t, occupancy.Summary{Total: 6, Vacant: 1, Occupied: 1, Reserved: 1, Dirty: 1, Repair: 1}, summary)

	grid := occupancy.Grid(rooms, bookings, today)
	require.Len(t, grid, 3)
	assert.Equal(t, 1, grid[0].Floor)
	assert.Equal(t, 3, grid[2].Floor)

	first := grid[0].Rooms
	require.Len(t, first, 3)
	assert.Equal(t, []string{"101", "102", "110"}, []string{first[0].Number, first[1].Number, first[2].Number})
	assert.Equal(t, roomModel.StatusOccupied, first[0].Effective)
	assert.Equal(t, "b1", first[0].BookingID)
	assert.Equal(t, roomModel.StatusReserved, first[2].Effective)
	assert.Equal(t, roomModel.StatusVacant, grid[1].Rooms[1].Effective)
}
