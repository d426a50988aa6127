package service

import (
	"context"
	"fmt"
	"hotelsphere/internal/domains/frontdesk/model"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/folio"
	"hotelsphere/internal/occupancy"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/remote"
	"hotelsphere/internal/syncer"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/failure"

	bookingModel "hotelsphere/internal/domains/booking/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"

	"github.com/rs/zerolog/log"
)

const settleRemark = "Settled at checkout"

func (s *serviceImpl) AddCharge(ctx context.Context, bookingID string, req dto.ChargeRequest) (res bookingModel.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status == bookingModel.StatusCancelled {
		return res, failure.Unprocessable("cannot charge a cancelled booking") // nolint:wrapcheck
	}

	booking.Charges = append(booking.Charges, req.ToModel(occupancy.Today()))

	result, err := s.writeBookings(ctx, []bookingModel.Booking{booking})
	if err != nil {
		return res, err
	}

	if err = rejected(result); err != nil {
		return res, err
	}

	return booking, nil
}

func (s *serviceImpl) PostPayment(ctx context.Context, bookingID string, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	return s.postPayment(ctx, booking, req)
}

// postPayment appends one payment to booking and records the matching receipt.
func (s *serviceImpl) postPayment(ctx context.Context, booking bookingModel.Booking, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	today := occupancy.Today()
	booking.Payments = append(booking.Payments, req.ToModel(req.Amount, req.Remarks, today))

	result, err := s.writeBookings(ctx, []bookingModel.Booking{booking})
	if err != nil {
		return res, err
	}

	if err = rejected(result); err != nil {
		return res, err
	}

	tx, err := s.receipt(ctx, booking, req.Amount, req.Ledger(), today)
	if err != nil {
		return res, err
	}

	res.Allocations = []dto.Allocation{{BookingID: booking.ID, Amount: req.Amount}}
	res.Transaction = tx

	return res, nil
}

func (s *serviceImpl) PostCombinedPayment(ctx context.Context, bookingID string, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostCombinedPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	trigger, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	all, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return res, err
	}

	return s.postCombined(ctx, folio.CombinedScope(trigger, all), settings, req)
}

// postCombined distributes one payment over the combined scope by each
// booking's own balance and records a single receipt for the whole amount.
func (s *serviceImpl) postCombined(ctx context.Context, scope []bookingModel.Booking, settings *settingsModel.HostelSettings, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	shares := folio.Balances(scope, settings)

	balances := make([]int64, len(shares))
	for i, share := range shares {
		balances[i] = share.Balance
	}

	parts := folio.Distribute(req.Amount, balances)
	today := occupancy.Today()

	var updated []bookingModel.Booking

	for i, booking := range scope {
		if parts[i] <= 0 {
			continue
		}

		booking.Payments = append(booking.Payments, req.ToModel(parts[i], model.DistributedRemark, today))
		updated = append(updated, booking)
		res.Allocations = append(res.Allocations, dto.Allocation{BookingID: booking.ID, Amount: parts[i]})
	}

	result, err := s.writeBookings(ctx, updated)
	if err != nil {
		return res, err
	}

	if err = rejected(result); err != nil {
		return res, err
	}

	res.Transaction, err = s.receipt(ctx, scope[0], req.Amount, req.Ledger(), today)
	if err != nil {
		return res, err
	}

	log.Info().
		Str("trigger", scope[0].ID).
		Int64("amount", req.Amount).
		Int("bookings", len(res.Allocations)).
		Msg("combined payment distributed")

	return res, nil
}

// receipt records the RECEIPT ledger entry of a payment against booking.
func (s *serviceImpl) receipt(ctx context.Context, booking bookingModel.Booking, amount int64, ledger, today string) (transactionModel.Transaction, error) {
	name := model.WalkInGuest

	guest, found, err := s.store.Guest(ctx, booking.GuestID)
	if err != nil {
		log.Error().Err(err).Str("guest", booking.GuestID).Msg("failed to get guest for receipt")

		return transactionModel.Transaction{}, fmt.Errorf("failed to get guest: %w", err)
	}

	if found && guest.Name != "" {
		name = guest.Name
	}

	roomNumber := booking.RoomID

	room, found, err := s.store.Room(ctx, booking.RoomID)
	if err != nil {
		log.Error().Err(err).Str("room", booking.RoomID).Msg("failed to get room for receipt")

		return transactionModel.Transaction{}, fmt.Errorf("failed to get room: %w", err)
	}

	if found {
		roomNumber = room.Number
	}

	tx := transactionModel.Transaction{
		ID:           dto.NewPaymentTransactionID(),
		Date:         today,
		Type:         transactionModel.TypeReceipt,
		AccountGroup: transactionModel.AccountGroupDirectIncome,
		Ledger:       ledger,
		Amount:       amount,
		Description:  fmt.Sprintf("Payment from %s (Room %s)", name, roomNumber),
		ReferenceID:  booking.ID,
		EntityName:   name,
	}

	if err = s.put(ctx, replica.Transactions, tx); err != nil {
		return transactionModel.Transaction{}, err
	}

	return tx, nil
}

// Checkout completes the booking, or its combined scope, and marks the rooms
// DIRTY. A positive balance is reported, never refused; with Settle the
// outstanding amount is posted first.
func (s *serviceImpl) Checkout(ctx context.Context, bookingID string, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	trigger, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	inScope := []bookingModel.Booking{trigger}

	if req.Combined {
		all, err := s.bookings(ctx)
		if err != nil {
			return res, err
		}

		inScope = folio.CombinedScope(trigger, all)
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return res, err
	}

	bill := folio.Compute(inScope, settings)

	if outstanding := folio.Outstanding(bill); req.Settle && outstanding > 0 {
		payment := dto.PaymentRequest{Amount: outstanding, Method: req.Method, Remarks: settleRemark}

		if len(inScope) > 1 {
			_, err = s.postCombined(ctx, inScope, settings, payment)
		} else {
			_, err = s.postPayment(ctx, inScope[0], payment)
		}

		if err != nil {
			return res, err
		}

		if inScope, err = s.reload(ctx, inScope); err != nil {
			return res, err
		}

		bill = folio.Compute(inScope, settings)
		res.Settled = outstanding
	}

	res.Folio = bill
	res.PositiveBalance = !folio.CanCheckout(bill)

	if res.PositiveBalance {
		log.Warn().Str("id", trigger.ID).Int64("balance", bill.Balance).Msg("checking out with a positive balance")
	}

	var completed []bookingModel.Booking

	for _, booking := range inScope {
		if booking.Status == bookingModel.StatusCompleted || !booking.Status.CanMoveTo(bookingModel.StatusCompleted) {
			continue
		}

		booking.Status = bookingModel.StatusCompleted
		completed = append(completed, booking)
	}

	result, err := s.writeBookings(ctx, completed)
	if err != nil {
		return res, err
	}

	res.Completed = result.Accepted

	if err = s.releaseRooms(ctx, completed, roomModel.StatusDirty); err != nil {
		return res, err
	}

	return res, nil
}

// releaseRooms moves the rooms of bookings to status and drops their booking pointer.
func (s *serviceImpl) releaseRooms(ctx context.Context, bookings []bookingModel.Booking, status roomModel.Status) error {
	var rooms []roomModel.Room

	for _, booking := range bookings {
		room, found, err := s.store.Room(ctx, booking.RoomID)
		if err != nil {
			log.Error().Err(err).Str("room", booking.RoomID).Msg("failed to get room")

			return fmt.Errorf("failed to get room: %w", err)
		}

		if !found {
			continue
		}

		room.Status = status
		if room.CurrentBookingID == booking.ID {
			room.CurrentBookingID = ""
		}

		rooms = append(rooms, room)
	}

	return s.put(ctx, replica.Rooms, records(rooms...)...)
}

func (s *serviceImpl) Folio(ctx context.Context, bookingID string, req dto.FolioRequest) (res folio.Folio, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Folio")
	defer scope.End()
	defer scope.TraceIfError(err)

	trigger, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return res, err
	}

	if req.Mode == "" || req.Mode == dto.FolioSingle {
		return folio.Compute([]bookingModel.Booking{trigger}, settings), nil
	}

	all, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	if req.Mode == dto.FolioSplit {
		return folio.Split(folio.CombinedScope(trigger, all), settings, req.Selection), nil
	}

	return folio.Combined(trigger, all, settings), nil
}

// PublicBill serves the read-only bill of one booking from the replica,
// cached in redis. An unreachable replica falls back to the local store.
func (s *serviceImpl) PublicBill(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublicBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := billCacheKey(bookingID)

	if s.cache != nil {
		found, cacheErr := s.cache.Load(ctx, key, &res)
		if cacheErr != nil {
			log.Warn().Err(cacheErr).Str("id", bookingID).Msg("failed to read cached bill")
		}

		if found {
			return res, nil
		}
	}

	res, err = s.remoteBill(ctx, bookingID)
	if err != nil {
		if remote.Classify(err) != remote.KindUnreachable {
			return res, err
		}

		log.Warn().Err(err).Str("id", bookingID).Msg("remote replica unreachable, serving bill from local store")

		if res, err = s.localBill(ctx, bookingID); err != nil {
			return res, err
		}
	}

	if s.cache != nil {
		if err := s.cache.Store(ctx, key, res, s.billTTL()); err != nil {
			log.Warn().Err(err).Str("id", bookingID).Msg("failed to cache bill")
		}
	}

	return res, nil
}

func fetchAs[T any](ctx context.Context, source remote.Replica, table replica.Table, id string) (T, bool, error) {
	var zero T

	record, found, err := source.Fetch(ctx, table, id)
	if err != nil || !found {
		return zero, found, err //nolint:wrapcheck
	}

	value, ok := record.(T)
	if !ok {
		return zero, false, fmt.Errorf("unexpected %s record %T", table, record)
	}

	return value, true, nil
}

func (s *serviceImpl) remoteBill(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	booking, found, err := fetchAs[bookingModel.Booking](ctx, s.remote, replica.Bookings, bookingID)
	if err != nil {
		return res, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if !found {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	guest, _, err := fetchAs[guestModel.Guest](ctx, s.remote, replica.Guests, booking.GuestID)
	if err != nil {
		return res, fmt.Errorf("failed to fetch guest: %w", err)
	}

	room, _, err := fetchAs[roomModel.Room](ctx, s.remote, replica.Rooms, booking.RoomID)
	if err != nil {
		return res, fmt.Errorf("failed to fetch room: %w", err)
	}

	settings, err := s.remote.FetchSettings(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to fetch settings: %w", err)
	}

	return bill(booking, guest, room, settings), nil
}

func (s *serviceImpl) localBill(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	booking, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	guest, _, err := s.store.Guest(ctx, booking.GuestID)
	if err != nil {
		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	room, _, err := s.store.Room(ctx, booking.RoomID)
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return res, err
	}

	return bill(booking, guest, room, settings), nil
}

func bill(booking bookingModel.Booking, guest guestModel.Guest, room roomModel.Room, settings *settingsModel.HostelSettings) dto.BillResponse {
	if settings == nil {
		defaults := syncer.DefaultSettings()
		settings = &defaults
	}

	return dto.BillResponse{
		Booking:  booking,
		Guest:    guest,
		Room:     room,
		Settings: *settings,
		Folio:    folio.Compute([]bookingModel.Booking{booking}, settings),
	}
}
