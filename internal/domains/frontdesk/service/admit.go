package service

import (
	"context"
	"fmt"
	"hotelsphere/internal/domains/frontdesk/model"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/occupancy"
	"hotelsphere/internal/replica"
	"hotelsphere/shared/constant"
	"unicode"

	bookingModel "hotelsphere/internal/domains/booking/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.AdmitRequest) (res dto.AdmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.admit(ctx, req, bookingModel.StatusActive)
}

func (s *serviceImpl) Reserve(ctx context.Context, req dto.AdmitRequest) (res dto.AdmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.admit(ctx, req, bookingModel.StatusReserved)
}

// admit stores the guest and one booking per stay. Rooms whose stay covers
// today take the matching occupancy status.
func (s *serviceImpl) admit(ctx context.Context, req dto.AdmitRequest, status bookingModel.Status) (res dto.AdmitResponse, err error) {
	rooms := make(map[string]roomModel.Room, len(req.Stays))

	for _, stay := range req.Stays {
		room, err := s.room(ctx, stay.RoomID)
		if err != nil {
			return res, err
		}

		rooms[room.ID] = room
	}

	guest, err := s.resolveGuest(ctx, req.Guest)
	if err != nil {
		return res, err
	}

	if err = s.put(ctx, replica.Guests, guest); err != nil {
		return res, err
	}

	bookingNo := req.BookingNo
	if bookingNo == "" {
		bookingNo = dto.NewBookingNo()
	}

	bookings := make([]bookingModel.Booking, 0, len(req.Stays))
	for _, stay := range req.Stays {
		bookings = append(bookings, stay.ToModel(bookingNo, guest.ID, rooms[stay.RoomID], status))
	}

	result, err := s.writeBookings(ctx, bookings)
	if err != nil {
		return res, err
	}

	accepted := make(map[string]struct{}, len(result.Accepted))
	for _, id := range result.Accepted {
		accepted[id] = struct{}{}
	}

	roomStatus := roomModel.StatusOccupied
	if status == bookingModel.StatusReserved {
		roomStatus = roomModel.StatusReserved
	}

	today := occupancy.Today()

	var touched []roomModel.Room

	for _, booking := range bookings {
		if _, ok := accepted[booking.ID]; !ok || !booking.Covers(today) {
			continue
		}

		room := rooms[booking.RoomID]
		room.Status = roomStatus
		room.CurrentBookingID = booking.ID
		touched = append(touched, room)
	}

	if err = s.put(ctx, replica.Rooms, records(touched...)...); err != nil {
		return res, err
	}

	log.Info().
		Str("guest", guest.ID).
		Str("bookingNo", bookingNo).
		Str("status", string(status)).
		Int("accepted", len(result.Accepted)).
		Int("rejected", len(result.Rejected)).
		Msg("guest admitted")

	res.GuestID = guest.ID
	res.BookingNo = bookingNo
	res.Result = result

	return res, nil
}

func phoneDigits(phone string) string {
	digits := make([]rune, 0, len(phone))

	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}

	return string(digits)
}

// resolveGuest returns the guest to store for req. A known id or a guest
// with the same phone number is updated in place instead of duplicated.
func (s *serviceImpl) resolveGuest(ctx context.Context, req dto.GuestRequest) (guestModel.Guest, error) {
	existing, found, err := s.findGuest(ctx, req)
	if err != nil {
		return guestModel.Guest{}, err
	}

	if !found {
		return req.ToModel(req.ID), nil
	}

	guest := req.ToModel(existing.ID)
	if guest.Documents == nil {
		guest.Documents = existing.Documents
	}

	return guest, nil
}

func (s *serviceImpl) findGuest(ctx context.Context, req dto.GuestRequest) (guestModel.Guest, bool, error) {
	if req.ID != "" {
		guest, found, err := s.store.Guest(ctx, req.ID)
		if err != nil {
			log.Error().Err(err).Str("id", req.ID).Msg("failed to get guest")

			return guest, false, fmt.Errorf("failed to get guest: %w", err)
		}

		if found {
			return guest, true, nil
		}
	}

	phone := phoneDigits(req.Phone)
	if phone == "" {
		return guestModel.Guest{}, false, nil
	}

	guests, err := s.store.Guests(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return guestModel.Guest{}, false, fmt.Errorf("failed to get guests: %w", err)
	}

	for _, guest := range guests {
		if phoneDigits(guest.Phone) == phone {
			return guest, true, nil
		}
	}

	return guestModel.Guest{}, false, nil
}

func (s *serviceImpl) WriteBookings(ctx context.Context, bookings []bookingModel.Booking) (res model.WriteResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WriteBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeBookings(ctx, bookings)
}

// writeBookings refuses bookings whose guest is unknown locally, stores the
// rest and pushes them.
func (s *serviceImpl) writeBookings(ctx context.Context, bookings []bookingModel.Booking) (res model.WriteResult, err error) {
	known := make(map[string]bool)
	accepted := make([]replica.Record, 0, len(bookings))

	for _, booking := range bookings {
		exists, checked := known[booking.GuestID]
		if !checked && booking.GuestID != "" {
			if _, exists, err = s.store.Guest(ctx, booking.GuestID); err != nil {
				log.Error().Err(err).Str("guest", booking.GuestID).Msg("failed to check guest")

				return res, fmt.Errorf("failed to check guest: %w", err)
			}

			known[booking.GuestID] = exists
		}

		if !exists {
			log.Warn().Str("id", booking.ID).Str("guest", booking.GuestID).Msg("booking rejected, guest not found")
			res.Reject(booking.ID, model.ReasonUnknownGuest)

			continue
		}

		res.Accept(booking.ID)
		accepted = append(accepted, booking)
	}

	if err = s.put(ctx, replica.Bookings, accepted...); err != nil {
		return res, err
	}

	s.forgetBills(ctx, res.Accepted...)

	return res, nil
}
