package service

import (
	"context"
	"fmt"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/occupancy"
	"hotelsphere/internal/replica"
	"hotelsphere/shared"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/failure"

	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CancelReservation(ctx context.Context, bookingID string) (res bookingModel.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != bookingModel.StatusReserved {
		return res, failure.Conflict("only reserved bookings can be cancelled") // nolint:wrapcheck
	}

	booking.Status = bookingModel.StatusCancelled

	result, err := s.writeBookings(ctx, []bookingModel.Booking{booking})
	if err != nil {
		return res, err
	}

	if err = rejected(result); err != nil {
		return res, err
	}

	room, found, err := s.store.Room(ctx, booking.RoomID)
	if err != nil {
		log.Error().Err(err).Str("room", booking.RoomID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if found && room.CurrentBookingID == booking.ID {
		room.CurrentBookingID = ""
		if room.Status == roomModel.StatusReserved {
			room.Status = roomModel.StatusVacant
		}

		if err = s.put(ctx, replica.Rooms, room); err != nil {
			return res, err
		}
	}

	return booking, nil
}

// ShiftRoom moves an in-house booking to another room. The old room is left DIRTY.
func (s *serviceImpl) ShiftRoom(ctx context.Context, bookingID string, req dto.ShiftRoomRequest) (res bookingModel.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ShiftRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.booking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != bookingModel.StatusActive {
		return res, failure.Conflict("only checked-in bookings can change room") // nolint:wrapcheck
	}

	if booking.RoomID == req.RoomID {
		return res, failure.BadRequestFromString("booking is already in this room") // nolint:wrapcheck
	}

	target, err := s.room(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	all, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	if occupancy.Resolve(target, all, occupancy.Today()) == roomModel.StatusOccupied {
		return res, failure.Conflict("room " + target.Number + " is occupied") // nolint:wrapcheck
	}

	previous := booking
	booking.RoomID = target.ID

	result, err := s.writeBookings(ctx, []bookingModel.Booking{booking})
	if err != nil {
		return res, err
	}

	if err = rejected(result); err != nil {
		return res, err
	}

	if err = s.releaseRooms(ctx, []bookingModel.Booking{previous}, roomModel.StatusDirty); err != nil {
		return res, err
	}

	target.Status = roomModel.StatusOccupied
	target.CurrentBookingID = booking.ID

	if err = s.put(ctx, replica.Rooms, target); err != nil {
		return res, err
	}

	return booking, nil
}

// groupRoomStatus is the room status that follows a bulk booking transition.
func groupRoomStatus(status bookingModel.Status) roomModel.Status {
	switch status {
	case bookingModel.StatusActive:
		return roomModel.StatusOccupied
	case bookingModel.StatusCompleted:
		return roomModel.StatusDirty
	default:
		return roomModel.StatusVacant
	}
}

// GroupStatus moves every booking of the group to status. Bookings whose
// lifecycle does not allow the move are skipped.
func (s *serviceImpl) GroupStatus(ctx context.Context, groupID string, req dto.GroupStatusRequest) (res dto.GroupStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GroupStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	_, found, err := s.store.Group(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Str("id", groupID).Msg("failed to get group")

		return res, fmt.Errorf("failed to get group: %w", err)
	}

	if !found {
		return res, failure.NotFound("group not found") // nolint:wrapcheck
	}

	all, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	var moved []bookingModel.Booking

	for _, booking := range all {
		if booking.GroupID != groupID {
			continue
		}

		if booking.Status == req.Status || !booking.Status.CanMoveTo(req.Status) {
			res.Skipped = append(res.Skipped, booking.ID)

			continue
		}

		booking.Status = req.Status
		moved = append(moved, booking)
	}

	result, err := s.writeBookings(ctx, moved)
	if err != nil {
		return res, err
	}

	res.Updated = result.Accepted
	for _, rejection := range result.Rejected {
		res.Skipped = append(res.Skipped, rejection.BookingID)
	}

	roomStatus := groupRoomStatus(req.Status)

	var rooms []roomModel.Room

	for _, booking := range moved {
		room, found, err := s.store.Room(ctx, booking.RoomID)
		if err != nil {
			log.Error().Err(err).Str("room", booking.RoomID).Msg("failed to get room")

			return res, fmt.Errorf("failed to get room: %w", err)
		}

		if !found {
			continue
		}

		room.Status = roomStatus
		room.CurrentBookingID = ""
		if req.Status == bookingModel.StatusActive {
			room.CurrentBookingID = booking.ID
		}

		rooms = append(rooms, room)
	}

	if err = s.put(ctx, replica.Rooms, records(rooms...)...); err != nil {
		return res, err
	}

	log.Info().Str("group", groupID).Str("status", string(req.Status)).Int("updated", len(res.Updated)).Msg("group status changed")

	return res, nil
}

func (s *serviceImpl) UpsertGroup(ctx context.Context, req dto.GroupRequest) (res groupModel.GroupProfile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	group := req.ToModel()
	if err = s.put(ctx, replica.Groups, group); err != nil {
		return res, err
	}

	return group, nil
}

func (s *serviceImpl) UpdateGuest(ctx context.Context, guestID string, req dto.GuestRequest) (res guestModel.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, found, err := s.store.Guest(ctx, guestID)
	if err != nil {
		log.Error().Err(err).Str("id", guestID).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if !found {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	guest := req.ToModel(guestID)
	if guest.Documents == nil {
		guest.Documents = existing.Documents
	}

	if err = s.put(ctx, replica.Guests, guest); err != nil {
		return res, err
	}

	return guest, nil
}

func (s *serviceImpl) SetRoomStatus(ctx context.Context, roomID string, req dto.RoomStatusRequest) (res roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetRoomStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Status.Valid() {
		return res, failure.BadRequestFromString("unknown room status " + string(req.Status)) // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.room(ctx, roomID)
	if err != nil {
		return res, err
	}

	room.Status = req.Status
	if req.Status == roomModel.StatusVacant {
		room.CurrentBookingID = ""
	}

	if err = s.put(ctx, replica.Rooms, room); err != nil {
		return res, err
	}

	return room, nil
}

// UpsertRoom creates or edits a room. Status and booking pointer of an
// existing room are kept unless the request sets a status.
func (s *serviceImpl) UpsertRoom(ctx context.Context, req dto.RoomRequest) (res roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status != "" && !req.Status.Valid() {
		return res, failure.BadRequestFromString("unknown room status " + string(req.Status)) // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room := req.ToModel()

	existing, found, err := s.store.Room(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Str("id", room.ID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if found {
		room.CurrentBookingID = existing.CurrentBookingID
		if req.Status == "" {
			room.Status = existing.Status
		}
	}

	if err = s.put(ctx, replica.Rooms, room); err != nil {
		return res, err
	}

	return room, nil
}

// DeleteRoom removes a room locally and remotely. Rooms with a live booking are kept.
func (s *serviceImpl) DeleteRoom(ctx context.Context, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err = s.room(ctx, roomID); err != nil {
		return err
	}

	all, err := s.bookings(ctx)
	if err != nil {
		return err
	}

	for _, booking := range all {
		if booking.RoomID != roomID {
			continue
		}

		if booking.Status == bookingModel.StatusActive || booking.Status == bookingModel.StatusReserved {
			return failure.Conflict("room has a live booking") // nolint:wrapcheck
		}
	}

	if err = s.store.Delete(ctx, replica.Rooms, roomID); err != nil {
		log.Error().Err(err).Str("id", roomID).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if err := s.coordinator.PushDelete(ctx, replica.Rooms, roomID); err != nil {
		log.Warn().Err(err).Str("id", roomID).Msg("remote delete failed, local delete kept")
	}

	return nil
}

// UpdateSettings replaces the settings record. Role passwords are kept when
// the request carries none.
func (s *serviceImpl) UpdateSettings(ctx context.Context, req dto.SettingsRequest) (res settingsModel.HostelSettings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.settings(ctx)
	if err != nil {
		return res, err
	}

	settings := req.ToModel()
	if settings.Passwords == nil && current != nil {
		settings.Passwords = current.Passwords
	}

	if _, err = s.store.PutSettings(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return res, fmt.Errorf("failed to update settings: %w", err)
	}

	if err := s.coordinator.PushSettings(ctx, settings); err != nil {
		log.Warn().Err(err).Msg("settings push failed, local write kept")
	}

	shared.InvalidateCaches(ctx, s.cache, billCachePrefix)

	return settings, nil
}

// RecordTransaction appends a ledger entry. Existing entries are never overwritten.
func (s *serviceImpl) RecordTransaction(ctx context.Context, req dto.TransactionRequest) (res transactionModel.Transaction, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordTransaction")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := req.ToModel(occupancy.Today())

	_, exists, err := s.store.Get(ctx, replica.Transactions, tx.ID)
	if err != nil {
		log.Error().Err(err).Str("id", tx.ID).Msg("failed to check transaction")

		return res, fmt.Errorf("failed to check transaction: %w", err)
	}

	if exists {
		return res, failure.Conflict("transaction " + tx.ID + " already recorded") // nolint:wrapcheck
	}

	if err = s.put(ctx, replica.Transactions, tx); err != nil {
		return res, err
	}

	return tx, nil
}

// Wipe empties the local store. The replica is not touched.
func (s *serviceImpl) Wipe(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wipe")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.store.ReplaceAll(ctx, replica.Snapshot{}); err != nil {
		log.Error().Err(err).Msg("failed to wipe local store")

		return fmt.Errorf("failed to wipe local store: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, billCachePrefix)
	log.Warn().Msg("local store wiped")

	return nil
}
