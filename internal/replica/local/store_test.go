package local_test

import (
	"context"
	"path/filepath"
	"testing"

	"hotelsphere/infras/otel/mocks"
	"hotelsphere/infras/sqlite"
	bookingModel "hotelsphere/internal/domains/booking/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/local"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) local.Store {
	t.Helper()

	pool, err := sqlite.Open(filepath.Join(t.TempDir(), "local.db"), 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	store, err := local.New(pool, mocks.NewOtel())
	require.NoError(t, err)

	return store
}

func sampleBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:           "b-1",
		BookingNo:    "BK-0001",
		RoomID:       "101",
		GuestID:      "g-1",
		CheckInDate:  "2024-01-01",
		CheckInTime:  "12:00",
		CheckOutDate: "2024-01-03",
		CheckOutTime: "11:00",
		Status:       bookingModel.StatusActive,
		Charges:      []bookingModel.Charge{{ID: "c-1", Description: "Laundry", Amount: 15000, Date: "2024-01-02"}},
		BasePrice:    200000,
		Discount:     5000,
	}
}

func TestPutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	booking := sampleBooking()

	changed, err := store.Put(ctx, replica.Bookings, booking)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = store.Put(ctx, replica.Bookings, booking)
	require.NoError(t, err)
	assert.False(t, changed, "identical record must not count as a change")

	booking.Discount = 0
	changed, err = store.Put(ctx, replica.Bookings, booking)
	require.NoError(t, err)
	assert.True(t, changed)

	stored, found, err := store.Booking(ctx, "b-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, booking, stored)
}

func TestPutRejectsWrongTable(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Put(ctx, replica.Rooms, sampleBooking())
	assert.ErrorIs(t, err, replica.ErrMismatchedTable)

	_, err = store.Put(ctx, replica.Settings, roomModel.Room{ID: "101"})
	assert.ErrorIs(t, err, local.ErrNotRecordTable)
}

func TestBulkPutDeleteClear(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	rooms := []replica.Record{
		roomModel.Room{ID: "102", Number: "102", Floor: 1, Price: 290000, Status: roomModel.StatusVacant},
		roomModel.Room{ID: "101", Number: "101", Floor: 1, Price: 290000, Status: roomModel.StatusDirty},
	}
	require.NoError(t, store.BulkPut(ctx, replica.Rooms, rooms))

	all, err := store.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "101", all[0].ID)

	require.NoError(t, store.Delete(ctx, replica.Rooms, "101"))

	_, found, err := store.Room(ctx, "101")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Clear(ctx, replica.Rooms))

	all, err = store.Rooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	settings, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)

	_, err = store.PutSettings(ctx, settingsModel.HostelSettings{Name: "First", TaxRate: 12})
	require.NoError(t, err)
	_, err = store.PutSettings(ctx, settingsModel.HostelSettings{Name: "Second", TaxRate: 18})
	require.NoError(t, err)

	settings, err = store.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Second", settings.Name)
	assert.InDelta(t, 18.0, settings.TaxRate, 0.0001)
}

func TestReplaceAllOverwritesStaleData(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Put(ctx, replica.Rooms, roomModel.Room{ID: "999", Number: "999"})
	require.NoError(t, err)
	_, err = store.PutSettings(ctx, settingsModel.HostelSettings{Name: "Seed"})
	require.NoError(t, err)

	snapshot := replica.Snapshot{
		Settings: &settingsModel.HostelSettings{Name: "Remote", TaxRate: 12},
		Rooms:    []roomModel.Room{{ID: "101", Number: "101", Status: roomModel.StatusVacant}},
		Guests:   []guestModel.Guest{{ID: "g-1", Name: "Asha", Phone: "9876543210"}},
		Bookings: []bookingModel.Booking{sampleBooking()},
	}
	require.NoError(t, store.ReplaceAll(ctx, snapshot))

	got, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Settings)
	assert.Equal(t, "Remote", got.Settings.Name)
	require.Len(t, got.Rooms, 1)
	assert.Equal(t, "101", got.Rooms[0].ID)
	assert.Len(t, got.Guests, 1)
	assert.Len(t, got.Bookings, 1)
	assert.Empty(t, got.Transactions)
	assert.Empty(t, got.Groups)
}

func TestEmpty(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	empty, err := store.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	_, err = store.Put(ctx, replica.Guests, guestModel.Guest{ID: "g-1"})
	require.NoError(t, err)

	empty, err = store.Empty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestBootstrapMarker(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, pending, err := store.PendingBootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, pending)

	require.NoError(t, store.BeginBootstrap(ctx, "remote"))

	marker, pending, err := store.PendingBootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, pending)
	assert.Equal(t, "remote", marker.Source)
	assert.False(t, marker.StartedAt.IsZero())

	require.NoError(t, store.CompleteBootstrap(ctx))

	_, pending, err = store.PendingBootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, pending)
}
