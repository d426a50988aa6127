package service_test

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"hotelsphere/config"
	otelMocks "hotelsphere/infras/otel/mocks"
	"hotelsphere/infras/sqlite"
	bookingModel "hotelsphere/internal/domains/booking/model"
	"hotelsphere/internal/domains/frontdesk/model"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/domains/frontdesk/service"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"
	"hotelsphere/internal/occupancy"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/local"
	remoteMocks "hotelsphere/internal/replica/remote/mocks"
	syncMocks "hotelsphere/internal/syncer/mocks"
	"hotelsphere/shared/cache"
	"hotelsphere/shared/failure"
	gRepo "hotelsphere/shared/repository"
	"hotelsphere/shared/timezone"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	store  local.Store
	coord  *syncMocks.MockCoordinator
	remote *remoteMocks.MockReplica
	svc    service.FrontDesk
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	pool, err := sqlite.Open(filepath.Join(t.TempDir(), "local.db"), 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	store, err := local.New(pool, otelMocks.NewOtel())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	coord := syncMocks.NewMockCoordinator(ctrl)
	remote := remoteMocks.NewMockReplica(ctrl)

	mr := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return fixture{
		store:  store,
		coord:  coord,
		remote: remote,
		svc:    service.New(store, coord, remote, cache.NewRedisCache(client, otelMocks.NewOtel()), cfg, otelMocks.NewOtel()),
	}
}

func (f fixture) pushOK() {
	f.coord.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f fixture) seed(t *testing.T, taxRate float64, items ...replica.Record) {
	t.Helper()

	ctx := context.Background()

	_, err := f.store.PutSettings(ctx, settingsModel.HostelSettings{Name: "HotelSphere Pro", TaxRate: taxRate})
	require.NoError(t, err)

	for _, item := range items {
		table, err := replica.TableOf(item)
		require.NoError(t, err)

		_, err = f.store.Put(ctx, table, item)
		require.NoError(t, err)
	}
}

func day(offset int) string {
	shifted, _ := timezone.AddDays(occupancy.Today(), offset)

	return shifted
}

func room(id string, price int64) roomModel.Room {
	return roomModel.Room{ID: id, Number: id, Floor: 1, Type: "DELUXE ROOM", Price: price, Status: roomModel.StatusVacant}
}

func admitRequest(phone string, stays ...dto.StayRequest) dto.AdmitRequest {
	return dto.AdmitRequest{
		Guest: dto.GuestRequest{Name: "Asha Rao", Phone: phone},
		Stays: stays,
	}
}

func TestFrontDesk_CheckIn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, 12, room("101", 2000))

	f.coord.EXPECT().Push(gomock.Any(), replica.Guests, gomock.Any()).Return(nil)
	f.coord.EXPECT().Push(gomock.Any(), replica.Bookings, gomock.Any()).Return(nil)
	f.coord.EXPECT().Push(gomock.Any(), replica.Rooms, gomock.Any()).Return(nil)

	res, err := f.svc.CheckIn(ctx, admitRequest("+91 98765 43210", dto.StayRequest{
		RoomID:       "101",
		CheckInDate:  day(0),
		CheckOutDate: day(2),
	}))
	require.NoError(t, err)

	assert.NotEmpty(t, res.GuestID)
	assert.NotEmpty(t, res.BookingNo)
	require.Len(t, res.Result.Accepted, 1)
	assert.Empty(t, res.Result.Rejected)

	booking, found, err := f.store.Booking(ctx, res.Result.Accepted[0])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, bookingModel.StatusActive, booking.Status)
	assert.Equal(t, int64(2000), booking.BasePrice)
	assert.Equal(t, res.GuestID, booking.GuestID)

	stored, _, err := f.store.Room(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, stored.Status)
	assert.Equal(t, booking.ID, stored.CurrentBookingID)
}

func TestFrontDesk_CheckInReusesGuestByPhone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pushOK()
	f.seed(t, 12, room("101", 2000), guestModel.Guest{ID: "g-1", Name: "Asha", Phone: "+91 98765-43210"})

	res, err := f.svc.CheckIn(ctx, admitRequest("919876543210", dto.StayRequest{
		RoomID:       "101",
		CheckInDate:  day(0),
		CheckOutDate: day(1),
	}))
	require.NoError(t, err)
	assert.Equal(t, "g-1", res.GuestID)

	guests, err := f.store.Guests(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Asha Rao", guests[0].Name)
}

func TestFrontDesk_CheckInUnknownRoom(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 12)

	_, err := f.svc.CheckIn(context.Background(), admitRequest("9876543210", dto.StayRequest{
		RoomID:       "999",
		CheckInDate:  day(0),
		CheckOutDate: day(1),
	}))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestFrontDesk_ReserveFutureStayLeavesRoomAlone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pushOK()
	f.seed(t, 12, room("101", 2000))

	res, err := f.svc.Reserve(ctx, admitRequest("9876543210", dto.StayRequest{
		RoomID:       "101",
		CheckInDate:  day(5),
		CheckOutDate: day(7),
	}))
	require.NoError(t, err)
	require.Len(t, res.Result.Accepted, 1)

	booking, _, err := f.store.Booking(ctx, res.Result.Accepted[0])
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusReserved, booking.Status)

	stored, _, err := f.store.Room(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusVacant, stored.Status)
	assert.Empty(t, stored.CurrentBookingID)
}

func TestFrontDesk_WriteBookingsRejectsUnknownGuest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pushOK()
	f.seed(t, 12, guestModel.Guest{ID: "g-1", Name: "Asha"})

	res, err := f.svc.WriteBookings(ctx, []bookingModel.Booking{
		{ID: "b-1", GuestID: "g-1", RoomID: "101", Status: bookingModel.StatusActive},
		{ID: "b-2", GuestID: "ghost", RoomID: "102", Status: bookingModel.StatusActive},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"b-1"}, res.Accepted)
	assert.Equal(t, []model.Rejection{{BookingID: "b-2", Reason: model.ReasonUnknownGuest}}, res.Rejected)

	_, found, err := f.store.Booking(ctx, "b-2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFrontDesk_PushFailureKeepsLocalWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, 12, guestModel.Guest{ID: "g-1", Name: "Asha"})

	f.coord.EXPECT().Push(gomock.Any(), replica.Bookings, gomock.Any()).Return(gRepo.ErrUnavailable)

	res, err := f.svc.WriteBookings(ctx, []bookingModel.Booking{{ID: "b-1", GuestID: "g-1", RoomID: "101"}})
	require.NoError(t, err)
	assert.True(t, res.AllAccepted())

	_, found, err := f.store.Booking(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, found)
}

func scenarioBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:           "b-1",
		RoomID:       "101",
		GuestID:      "g-1",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Status:       bookingModel.StatusActive,
		BasePrice:    2000,
		Discount:     50,
		Charges:      []bookingModel.Charge{{ID: "c-1", Description: "Laundry", Amount: 150, Date: "2024-01-02"}},
	}
}

func TestFrontDesk_PayThenCheckout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pushOK()
	f.seed(t, 12, room("101", 2000), guestModel.Guest{ID: "g-1", Name: "Asha"}, scenarioBooking())

	bill, err := f.svc.Folio(ctx, "b-1", dto.FolioRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(4150), bill.SubTotal)
	assert.Equal(t, int64(4100), bill.AfterDiscount)
	assert.Equal(t, int64(492), bill.Tax)
	assert.Equal(t, int64(4592), bill.GrossTotal)

	paid, err := f.svc.PostPayment(ctx, "b-1", dto.PaymentRequest{Amount: 4592, Method: "UPI"})
	require.NoError(t, err)

	tx := paid.Transaction
	assert.Equal(t, transactionModel.TypeReceipt, tx.Type)
	assert.Equal(t, transactionModel.AccountGroupDirectIncome, tx.AccountGroup)
	assert.Equal(t, "UPI", tx.Ledger)
	assert.Equal(t, int64(4592), tx.Amount)
	assert.Equal(t, "b-1", tx.ReferenceID)
	assert.Equal(t, "Asha", tx.EntityName)
	assert.Equal(t, "Payment from Asha (Room 101)", tx.Description)

	res, err := f.svc.Checkout(ctx, "b-1", dto.CheckoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Folio.Balance)
	assert.False(t, res.PositiveBalance)
	assert.Equal(t, []string{"b-1"}, res.Completed)

	booking, _, err := f.store.Booking(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCompleted, booking.Status)

	stored, _, err := f.store.Room(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusDirty, stored.Status)
}

func TestFrontDesk_Checkout(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CheckoutRequest
		wantSettled  int64
		wantPositive bool
		wantBalance  int64
		wantTxCount  int
	}{
		{
			name:         "positive balance is reported, not refused",
			req:          dto.CheckoutRequest{},
			wantPositive: true,
			wantBalance:  4592,
		},
		{
			name:        "settle posts the outstanding amount first",
			req:         dto.CheckoutRequest{Settle: true, Method: "Card"},
			wantSettled: 4592,
			wantTxCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.pushOK()
			f.seed(t, 12, room("101", 2000), guestModel.Guest{ID: "g-1", Name: "Asha"}, scenarioBooking())

			res, err := f.svc.Checkout(ctx, "b-1", tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSettled, res.Settled)
			assert.Equal(t, tt.wantPositive, res.PositiveBalance)
			assert.Equal(t, tt.wantBalance, res.Folio.Balance)
			assert.Equal(t, []string{"b-1"}, res.Completed)

			transactions, err := f.store.Transactions(ctx)
			require.NoError(t, err)
			assert.Len(t, transactions, tt.wantTxCount)
		})
	}
}

func TestFrontDesk_PostCombinedPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pushOK()

	stay := func(id, roomID string, price int64) bookingModel.Booking {
		return bookingModel.Booking{
			ID:           id,
			RoomID:       roomID,
			GuestID:      "g-1",
			CheckInDate:  "2024-01-01",
			CheckOutDate: "2024-01-02",
			Status:       bookingModel.StatusActive,
			BasePrice:    price,
		}
	}

	f.seed(t, 0,
		room("101", 1000), room("102", 3000),
		guestModel.Guest{ID: "g-1", Name: "Asha"},
		stay("b-1", "101", 1000), stay("b-2", "102", 3000),
	)

	res, err := f.svc.PostCombinedPayment(ctx, "b-1", dto.PaymentRequest{Amount: 2000})
	require.NoError(t, err)

	assert.Equal(t, []dto.Allocation{{BookingID: "b-1", Amount: 500}, {BookingID: "b-2", Amount: 1500}}, res.Allocations)
	assert.Equal(t, int64(2000), res.Transaction.Amount)
	assert.Equal(t, model.DefaultLedger, res.Transaction.Ledger)

	for _, allocation := range res.Allocations {
		booking, _, err := f.store.Booking(ctx, allocation.BookingID)
		require.NoError(t, err)
		require.Len(t, booking.Payments, 1)
		assert.Equal(t, allocation.Amount, booking.Payments[0].Amount)
		assert.Equal(t, model.DistributedRemark, booking.Payments[0].Remarks)
	}

	transactions, err := f.store.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestFrontDesk_CancelReservation(t *testing.T) {
	tests := []struct {
		name     string
		status   bookingModel.Status
		wantCode int
	}{
		{name: "reserved booking is cancelled", status: bookingModel.StatusReserved},
		{name: "active booking is refused", status: bookingModel.StatusActive, wantCode: http.StatusConflict},
		{name: "completed booking is refused", status: bookingModel.StatusCompleted, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.pushOK()

			reserved := room("101", 2000)
			reserved.Status = roomModel.StatusReserved
			reserved.CurrentBookingID = "b-1"

			f.seed(t, 12, reserved, guestModel.Guest{ID: "g-1", Name: "Asha"}, bookingModel.Booking{
				ID: "b-1", RoomID: "101", GuestID: "g-1", Status: tt.status,
			})

			booking, err := f.svc.CancelReservation(ctx, "b-1")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, bookingModel.StatusCancelled, booking.Status)

			stored, _, err := f.store.Room(ctx, "101")
			require.NoError(t, err)
			assert.Equal(t, roomModel.StatusVacant, stored.Status)
			assert.Empty(t, stored.CurrentBookingID)
		})
	}
}

func TestFrontDesk_GroupStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pushOK()

	f.seed(t, 12,
		room("101", 2000), room("102", 2000),
		guestModel.Guest{ID: "g-1", Name: "Asha"},
		groupModel.GroupProfile{ID: "grp-1", GroupName: "Wedding", Status: groupModel.StatusActive},
		bookingModel.Booking{ID: "b-1", RoomID: "101", GuestID: "g-1", GroupID: "grp-1", Status: bookingModel.StatusReserved},
		bookingModel.Booking{ID: "b-2", RoomID: "102", GuestID: "g-1", GroupID: "grp-1", Status: bookingModel.StatusCompleted},
	)

	res, err := f.svc.GroupStatus(ctx, "grp-1", dto.GroupStatusRequest{Status: bookingModel.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, []string{"b-1"}, res.Updated)
	assert.Equal(t, []string{"b-2"}, res.Skipped)

	first, _, err := f.store.Room(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusOccupied, first.Status)
	assert.Equal(t, "b-1", first.CurrentBookingID)

	second, _, err := f.store.Room(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusVacant, second.Status)

	_, err = f.svc.GroupStatus(ctx, "missing", dto.GroupStatusRequest{Status: bookingModel.StatusActive})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestFrontDesk_DeleteRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, 12,
		room("101", 2000), room("102", 2000),
		guestModel.Guest{ID: "g-1", Name: "Asha"},
		bookingModel.Booking{ID: "b-1", RoomID: "101", GuestID: "g-1", Status: bookingModel.StatusActive},
	)

	err := f.svc.DeleteRoom(ctx, "101")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	f.coord.EXPECT().PushDelete(gomock.Any(), replica.Rooms, "102").Return(errors.New("offline"))

	require.NoError(t, f.svc.DeleteRoom(ctx, "102"))

	_, found, err := f.store.Room(ctx, "102")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFrontDesk_UpdateSettingsKeepsPasswords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.store.PutSettings(ctx, settingsModel.HostelSettings{Name: "Old", Passwords: map[string]string{"ADMIN": "secret"}})
	require.NoError(t, err)

	f.coord.EXPECT().PushSettings(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.svc.UpdateSettings(ctx, dto.SettingsRequest{Name: "HotelSphere Pro", TaxRate: 18})
	require.NoError(t, err)
	assert.Equal(t, "secret", updated.Passwords["ADMIN"])

	stored, err := f.svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "HotelSphere Pro", stored.Name)
	assert.InDelta(t, 18, stored.TaxRate, 0.001)
}

func TestFrontDesk_RecordTransactionIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pushOK()

	req := dto.TransactionRequest{
		ID:           "TX-1",
		Type:         transactionModel.TypeJournal,
		AccountGroup: "Indirect Expenses",
		Ledger:       "Electricity",
		Amount:       1200,
	}

	tx, err := f.svc.RecordTransaction(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, occupancy.Today(), tx.Date)

	_, err = f.svc.RecordTransaction(ctx, req)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestFrontDesk_PublicBill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	booking := scenarioBooking()
	settings := settingsModel.HostelSettings{Name: "HotelSphere Pro", TaxRate: 12}

	f.remote.EXPECT().Fetch(gomock.Any(), replica.Bookings, "b-1").Return(booking, true, nil).Times(1)
	f.remote.EXPECT().Fetch(gomock.Any(), replica.Guests, "g-1").Return(guestModel.Guest{ID: "g-1", Name: "Asha"}, true, nil).Times(1)
	f.remote.EXPECT().Fetch(gomock.Any(), replica.Rooms, "101").Return(room("101", 2000), true, nil).Times(1)
	f.remote.EXPECT().FetchSettings(gomock.Any()).Return(&settings, nil).Times(1)

	first, err := f.svc.PublicBill(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4592), first.Folio.GrossTotal)
	assert.Equal(t, "Asha", first.Guest.Name)

	second, err := f.svc.PublicBill(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, first.Folio, second.Folio)
}

func TestFrontDesk_PublicBillFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, 12, room("101", 2000), guestModel.Guest{ID: "g-1", Name: "Asha"}, scenarioBooking())

	f.remote.EXPECT().Fetch(gomock.Any(), replica.Bookings, "b-1").Return(nil, false, gRepo.ErrUnavailable)

	bill, err := f.svc.PublicBill(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4592), bill.Folio.GrossTotal)
	assert.Equal(t, "101", bill.Room.Number)
}

func TestFrontDesk_PublicBillNotFound(t *testing.T) {
	f := newFixture(t)

	f.remote.EXPECT().Fetch(gomock.Any(), replica.Bookings, "nope").Return(nil, false, nil)

	_, err := f.svc.PublicBill(context.Background(), "nope")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestFrontDesk_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	dirty := room("102", 2000)
	dirty.Status = roomModel.StatusDirty

	f.seed(t, 12,
		room("101", 2000), dirty,
		guestModel.Guest{ID: "g-1", Name: "Asha"},
		bookingModel.Booking{ID: "b-1", RoomID: "102", GuestID: "g-1", Status: bookingModel.StatusActive, CheckInDate: day(-1), CheckOutDate: day(1)},
	)

	res, err := f.svc.Dashboard(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, occupancy.Today(), res.Date)
	assert.Equal(t, occupancy.Summary{Total: 2, Vacant: 1, Occupied: 1}, res.Summary)

	_, err = f.svc.Dashboard(ctx, "yesterday")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
