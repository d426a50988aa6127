package service

import (
	"context"
	"fmt"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/occupancy"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/failure"
	"hotelsphere/shared/validator"

	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"

	"github.com/rs/zerolog/log"
)

// Dashboard resolves every room for date, today when empty.
func (s *serviceImpl) Dashboard(ctx context.Context, date string) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	if date == "" {
		date = occupancy.Today()
	} else if err = validator.ValidateVar(date, "isodate"); err != nil {
		return res, failure.InvalidDateParam
	}

	rooms, err := s.Rooms(ctx)
	if err != nil {
		return res, err
	}

	bookings, err := s.bookings(ctx)
	if err != nil {
		return res, err
	}

	res.Date = date
	res.Summary = occupancy.Summarize(rooms, bookings, date)
	res.Floors = occupancy.Grid(rooms, bookings, date)

	return res, nil
}

func (s *serviceImpl) Settings(ctx context.Context) (res settingsModel.HostelSettings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settings")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.settings(ctx)
	if err != nil {
		return res, err
	}

	if settings == nil {
		return res, failure.NotFound("settings not found") // nolint:wrapcheck
	}

	return *settings, nil
}

func (s *serviceImpl) Rooms(ctx context.Context) ([]roomModel.Room, error) {
	rooms, err := s.store.Rooms(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return rooms, nil
}

// Guests lists guests, only those with a matching phone number when phone is set.
func (s *serviceImpl) Guests(ctx context.Context, phone string) ([]guestModel.Guest, error) {
	guests, err := s.store.Guests(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return nil, fmt.Errorf("failed to get guests: %w", err)
	}

	if phone == "" {
		return guests, nil
	}

	digits := phoneDigits(phone)
	matched := make([]guestModel.Guest, 0, 1)

	for _, guest := range guests {
		if phoneDigits(guest.Phone) == digits {
			matched = append(matched, guest)
		}
	}

	return matched, nil
}

func (s *serviceImpl) Bookings(ctx context.Context) ([]bookingModel.Booking, error) {
	return s.bookings(ctx)
}

func (s *serviceImpl) Transactions(ctx context.Context) ([]transactionModel.Transaction, error) {
	transactions, err := s.store.Transactions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, nil
}

func (s *serviceImpl) Groups(ctx context.Context) ([]groupModel.GroupProfile, error) {
	groups, err := s.store.Groups(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get groups")

		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	return groups, nil
}
