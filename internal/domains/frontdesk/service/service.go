package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelsphere/config"
	"hotelsphere/infras/otel"
	"hotelsphere/internal/domains/frontdesk/model"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/folio"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/local"
	"hotelsphere/internal/replica/remote"
	"hotelsphere/internal/syncer"
	"hotelsphere/shared"
	"hotelsphere/shared/cache"
	"hotelsphere/shared/failure"
	"sync"
	"time"

	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"

	"github.com/rs/zerolog/log"
)

const (
	billCachePrefix = "bill"
	defaultBillTTL  = 5 * time.Minute
)

// FrontDesk holds the documented write operations of the front desk. Every
// write lands in the local store first and is then pushed to the replica.
type FrontDesk interface {
	CheckIn(ctx context.Context, req dto.AdmitRequest) (dto.AdmitResponse, error)
	Reserve(ctx context.Context, req dto.AdmitRequest) (dto.AdmitResponse, error)
	WriteBookings(ctx context.Context, bookings []bookingModel.Booking) (model.WriteResult, error)
	AddCharge(ctx context.Context, bookingID string, req dto.ChargeRequest) (bookingModel.Booking, error)
	PostPayment(ctx context.Context, bookingID string, req dto.PaymentRequest) (dto.PaymentResponse, error)
	PostCombinedPayment(ctx context.Context, bookingID string, req dto.PaymentRequest) (dto.PaymentResponse, error)
	Checkout(ctx context.Context, bookingID string, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
	CancelReservation(ctx context.Context, bookingID string) (bookingModel.Booking, error)
	ShiftRoom(ctx context.Context, bookingID string, req dto.ShiftRoomRequest) (bookingModel.Booking, error)
	GroupStatus(ctx context.Context, groupID string, req dto.GroupStatusRequest) (dto.GroupStatusResponse, error)
	UpsertGroup(ctx context.Context, req dto.GroupRequest) (groupModel.GroupProfile, error)
	UpdateGuest(ctx context.Context, guestID string, req dto.GuestRequest) (guestModel.Guest, error)
	SetRoomStatus(ctx context.Context, roomID string, req dto.RoomStatusRequest) (roomModel.Room, error)
	UpsertRoom(ctx context.Context, req dto.RoomRequest) (roomModel.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
	UpdateSettings(ctx context.Context, req dto.SettingsRequest) (settingsModel.HostelSettings, error)
	RecordTransaction(ctx context.Context, req dto.TransactionRequest) (transactionModel.Transaction, error)
	Wipe(ctx context.Context) error

	Dashboard(ctx context.Context, date string) (dto.DashboardResponse, error)
	Folio(ctx context.Context, bookingID string, req dto.FolioRequest) (folio.Folio, error)
	PublicBill(ctx context.Context, bookingID string) (dto.BillResponse, error)
	Settings(ctx context.Context) (settingsModel.HostelSettings, error)
	Rooms(ctx context.Context) ([]roomModel.Room, error)
	Guests(ctx context.Context, phone string) ([]guestModel.Guest, error)
	Bookings(ctx context.Context) ([]bookingModel.Booking, error)
	Transactions(ctx context.Context) ([]transactionModel.Transaction, error)
	Groups(ctx context.Context) ([]groupModel.GroupProfile, error)
}

type serviceImpl struct {
	// mu serializes front-desk writes so read-modify-write sequences on the
	// local store do not interleave with each other.
	mu          sync.Mutex
	store       local.Store
	coordinator syncer.Coordinator
	remote      remote.Replica
	cache       cache.RedisCache
	cfg         *config.Config
	otel        otel.Otel
}

func New(store local.Store, coordinator syncer.Coordinator, replica remote.Replica, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) FrontDesk {
	return &serviceImpl{
		store:       store,
		coordinator: coordinator,
		remote:      replica,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
	}
}

func records[T replica.Record](items ...T) []replica.Record {
	out := make([]replica.Record, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}

	return out
}

// push sends records to the replica. A failure is already reflected in the
// sync health and never undoes the local write.
func (s *serviceImpl) push(ctx context.Context, table replica.Table, items ...replica.Record) {
	if len(items) == 0 {
		return
	}

	if err := s.coordinator.Push(ctx, table, items...); err != nil {
		log.Warn().Err(err).Str("table", string(table)).Int("records", len(items)).Msg("push failed, local write kept")
	}
}

// put writes records locally and pushes them.
func (s *serviceImpl) put(ctx context.Context, table replica.Table, items ...replica.Record) error {
	if len(items) == 0 {
		return nil
	}

	if err := s.store.BulkPut(ctx, table, items); err != nil {
		log.Error().Err(err).Str("table", string(table)).Msg("failed to write local records")

		return fmt.Errorf("failed to write %s: %w", table, err)
	}

	s.push(ctx, table, items...)

	return nil
}

func (s *serviceImpl) booking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, found, err := s.store.Booking(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if !found {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) room(ctx context.Context, id string) (roomModel.Room, error) {
	room, found, err := s.store.Room(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if !found {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) settings(ctx context.Context) (*settingsModel.HostelSettings, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (s *serviceImpl) bookings(ctx context.Context) ([]bookingModel.Booking, error) {
	bookings, err := s.store.Bookings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

// reload re-reads bookings that were changed by an earlier step of the same operation.
func (s *serviceImpl) reload(ctx context.Context, bookings []bookingModel.Booking) ([]bookingModel.Booking, error) {
	fresh := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		current, err := s.booking(ctx, booking.ID)
		if err != nil {
			return nil, err
		}

		fresh = append(fresh, current)
	}

	return fresh, nil
}

func billCacheKey(bookingID string) string {
	return shared.BuildCacheKey(billCachePrefix, bookingID)
}

// forgetBills drops cached public bills of the given bookings. Failures are logged only.
func (s *serviceImpl) forgetBills(ctx context.Context, bookingIDs ...string) {
	if s.cache == nil {
		return
	}

	for _, id := range bookingIDs {
		if err := s.cache.Delete(ctx, billCacheKey(id)); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("failed to drop cached bill")
		}
	}
}

func (s *serviceImpl) billTTL() time.Duration {
	if s.cfg.Cache.TTL > 0 {
		return time.Duration(s.cfg.Cache.TTL) * time.Second
	}

	return defaultBillTTL
}

// rejected turns a refused single-booking write into an error.
func rejected(result model.WriteResult) error {
	if result.AllAccepted() {
		return nil
	}

	rejection := result.Rejected[0]

	return failure.Unprocessable(fmt.Sprintf("booking %s rejected: %s", rejection.BookingID, rejection.Reason)) // nolint:wrapcheck
}
