package remote

//go:generate go run go.uber.org/mock/mockgen -source=./remote.go -destination=./mocks/remote_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelsphere/config"
	"hotelsphere/infras/otel"
	"hotelsphere/infras/postgres"
	"hotelsphere/internal/replica"
	"hotelsphere/shared/constant"
	gRepo "hotelsphere/shared/repository"
	"hotelsphere/shared/timezone"

	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	primaryColumn = "id"
	// settingsID keys the single settings row.
	settingsID = "primary"
)

type settingsRow struct {
	ID string `db:"id"`
	settingsModel.HostelSettings
}

// Replica is the shared remote copy of every table.
type Replica interface {
	Select(ctx context.Context, table replica.Table) ([]replica.Record, error)
	Fetch(ctx context.Context, table replica.Table, id string) (replica.Record, bool, error)
	Upsert(ctx context.Context, table replica.Table, records ...replica.Record) error
	Delete(ctx context.Context, table replica.Table, id string) error
	FetchSettings(ctx context.Context) (*settingsModel.HostelSettings, error)
	UpsertSettings(ctx context.Context, settings settingsModel.HostelSettings) error
	FetchAll(ctx context.Context) (replica.Snapshot, error)
	Ping(ctx context.Context) error
}

type replicaImpl struct {
	db     *postgres.Connection
	otel   otel.Otel
	feed   Feed
	origin string

	rooms        gRepo.Table[roomModel.Room]
	guests       gRepo.Table[guestModel.Guest]
	bookings     gRepo.Table[bookingModel.Booking]
	transactions gRepo.Table[transactionModel.Transaction]
	groups       gRepo.Table[groupModel.GroupProfile]
	settings     gRepo.Table[settingsRow]
}

// New builds the replica. feed may be nil, in which case writes are not announced.
func New(db *postgres.Connection, feed Feed, cfg *config.Config, otel otel.Otel) Replica {
	return &replicaImpl{
		db:     db,
		otel:   otel,
		feed:   feed,
		origin: ClientID(cfg),

		rooms:        gRepo.NewTable[roomModel.Room]("room", roomModel.TableName, primaryColumn, db, otel),
		guests:       gRepo.NewTable[guestModel.Guest]("guest", guestModel.TableName, primaryColumn, db, otel),
		bookings:     gRepo.NewTable[bookingModel.Booking]("booking", bookingModel.TableName, primaryColumn, db, otel),
		transactions: gRepo.NewTable[transactionModel.Transaction]("transaction", transactionModel.TableName, primaryColumn, db, otel),
		groups:       gRepo.NewTable[groupModel.GroupProfile]("group", groupModel.TableName, primaryColumn, db, otel),
		settings:     gRepo.NewTable[settingsRow]("settings", settingsModel.TableName, primaryColumn, db, otel),
	}
}

func (r *replicaImpl) Ping(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.Ping")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !r.db.Available() {
		return gRepo.ErrUnavailable
	}

	return r.db.Ping(ctx) //nolint:wrapcheck
}

func toRecords[T replica.Record](rows []T) []replica.Record {
	records := make([]replica.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row)
	}

	return records
}

func (r *replicaImpl) Select(ctx context.Context, table replica.Table) (records []replica.Record, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.Select")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	switch table {
	case replica.Rooms:
		rows, err := r.rooms.List(ctx)

		return toRecords(rows), err //nolint:wrapcheck
	case replica.Guests:
		rows, err := r.guests.List(ctx)

		return toRecords(rows), err //nolint:wrapcheck
	case replica.Bookings:
		rows, err := r.bookings.List(ctx)

		return toRecords(rows), err //nolint:wrapcheck
	case replica.Transactions:
		rows, err := r.transactions.List(ctx)

		return toRecords(rows), err //nolint:wrapcheck
	case replica.Groups:
		rows, err := r.groups.List(ctx)

		return toRecords(rows), err //nolint:wrapcheck
	case replica.Settings:
		return nil, replica.ErrSettingsRecord
	default:
		return nil, fmt.Errorf("%w: %s", replica.ErrUnknownTable, table)
	}
}

func fetchOne[T replica.Record](ctx context.Context, repo *gRepo.Table[T], id string) (replica.Record, bool, error) {
	row, found, err := repo.Find(ctx, id)
	if err != nil || !found {
		return nil, false, err //nolint:wrapcheck
	}

	return row, true, nil
}

func (r *replicaImpl) Fetch(ctx context.Context, table replica.Table, id string) (record replica.Record, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.Fetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch table {
	case replica.Rooms:
		return fetchOne(ctx, &r.rooms, id)
	case replica.Guests:
		return fetchOne(ctx, &r.guests, id)
	case replica.Bookings:
		return fetchOne(ctx, &r.bookings, id)
	case replica.Transactions:
		return fetchOne(ctx, &r.transactions, id)
	case replica.Groups:
		return fetchOne(ctx, &r.groups, id)
	case replica.Settings:
		return nil, false, replica.ErrSettingsRecord
	default:
		return nil, false, fmt.Errorf("%w: %s", replica.ErrUnknownTable, table)
	}
}

func as[T any](record replica.Record) (T, bool) {
	switch typed := record.(type) {
	case T:
		return typed, true
	case *T:
		if typed != nil {
			return *typed, true
		}
	}

	var zero T

	return zero, false
}

func upsertAll[T replica.Record](ctx context.Context, tx *sqlx.Tx, repo *gRepo.Table[T], table replica.Table, origin string, records []replica.Record) ([]replica.ChangeEvent, error) {
	events := make([]replica.ChangeEvent, 0, len(records))
	now := timezone.Now().UTC()

	for _, record := range records {
		row, ok := as[T](record)
		if !ok {
			return nil, fmt.Errorf("%w: %T in %s", replica.ErrMismatchedTable, record, table)
		}

		inserted, err := repo.UpsertTx(ctx, tx, row)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		event, err := replica.NewUpsertEvent(table, inserted, row, origin, now)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		events = append(events, event)
	}

	return events, nil
}

// Upsert writes records in one transaction and announces each row on the feed.
func (r *replicaImpl) Upsert(ctx context.Context, table replica.Table, records ...replica.Record) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	if len(records) == 0 {
		return nil
	}

	if err = replica.CheckTable(table, records...); err != nil {
		return err //nolint:wrapcheck
	}

	if !r.db.Available() {
		return gRepo.ErrUnavailable
	}

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Str("table", string(table)).Msg("failed to begin remote transaction")

		return fmt.Errorf("failed to begin remote transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, context.Canceled) {
				log.Warn().Err(rbErr).Msg("failed to rollback remote transaction")
			}
		}
	}()

	var events []replica.ChangeEvent

	switch table {
	case replica.Rooms:
		events, err = upsertAll(ctx, tx, &r.rooms, table, r.origin, records)
	case replica.Guests:
		events, err = upsertAll(ctx, tx, &r.guests, table, r.origin, records)
	case replica.Bookings:
		events, err = upsertAll(ctx, tx, &r.bookings, table, r.origin, records)
	case replica.Transactions:
		events, err = upsertAll(ctx, tx, &r.transactions, table, r.origin, records)
	case replica.Groups:
		events, err = upsertAll(ctx, tx, &r.groups, table, r.origin, records)
	default:
		err = fmt.Errorf("%w: %s", replica.ErrUnknownTable, table)
	}

	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Str("table", string(table)).Msg("failed to commit remote transaction")

		return fmt.Errorf("failed to commit remote transaction: %w", err)
	}

	r.announce(ctx, events...)

	return nil
}

// announce publishes events after a committed write. The write already
// succeeded, so publish failures are only logged.
func (r *replicaImpl) announce(ctx context.Context, events ...replica.ChangeEvent) {
	if r.feed == nil || len(events) == 0 {
		return
	}

	if err := r.feed.Publish(ctx, events...); err != nil {
		log.Warn().Err(err).Int("events", len(events)).Msg("failed to announce remote changes")
	}
}

func (r *replicaImpl) Delete(ctx context.Context, table replica.Table, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	switch table {
	case replica.Rooms:
		err = r.rooms.Remove(ctx, id)
	case replica.Guests:
		err = r.guests.Remove(ctx, id)
	case replica.Bookings:
		err = r.bookings.Remove(ctx, id)
	case replica.Transactions:
		err = r.transactions.Remove(ctx, id)
	case replica.Groups:
		err = r.groups.Remove(ctx, id)
	case replica.Settings:
		return replica.ErrSettingsRecord
	default:
		return fmt.Errorf("%w: %s", replica.ErrUnknownTable, table)
	}

	if err != nil {
		return err //nolint:wrapcheck
	}

	r.announce(ctx, replica.NewDeleteEvent(table, id, r.origin, timezone.Now().UTC()))

	return nil
}

// FetchSettings returns nil when the replica holds no settings row.
func (r *replicaImpl) FetchSettings(ctx context.Context) (settings *settingsModel.HostelSettings, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.FetchSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	row, found, err := r.settings.Find(ctx, settingsID)
	if err != nil || !found {
		return nil, err //nolint:wrapcheck
	}

	return &row.HostelSettings, nil
}

func (r *replicaImpl) UpsertSettings(ctx context.Context, settings settingsModel.HostelSettings) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.UpsertSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	inserted, err := r.settings.Upsert(ctx, settingsRow{ID: settingsID, HostelSettings: settings})
	if err != nil {
		return err //nolint:wrapcheck
	}

	event, err := replica.NewUpsertEvent(replica.Settings, inserted, settings, r.origin, timezone.Now().UTC())
	if err != nil {
		return err //nolint:wrapcheck
	}

	r.announce(ctx, event)

	return nil
}

// FetchAll reads every table. Any failure aborts the whole snapshot.
func (r *replicaImpl) FetchAll(ctx context.Context) (snapshot replica.Snapshot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".remote.FetchAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if snapshot.Settings, err = r.FetchSettings(ctx); err != nil {
		return replica.Snapshot{}, err
	}

	if snapshot.Rooms, err = r.rooms.List(ctx); err != nil {
		return replica.Snapshot{}, err //nolint:wrapcheck
	}

	if snapshot.Guests, err = r.guests.List(ctx); err != nil {
		return replica.Snapshot{}, err //nolint:wrapcheck
	}

	if snapshot.Bookings, err = r.bookings.List(ctx); err != nil {
		return replica.Snapshot{}, err //nolint:wrapcheck
	}

	if snapshot.Transactions, err = r.transactions.List(ctx); err != nil {
		return replica.Snapshot{}, err //nolint:wrapcheck
	}

	if snapshot.Groups, err = r.groups.List(ctx); err != nil {
		return replica.Snapshot{}, err //nolint:wrapcheck
	}

	return snapshot, nil
}
