package local

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelsphere/infras/otel"
	"hotelsphere/infras/sqlite"
	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"
	"hotelsphere/internal/replica"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/timezone"

	"github.com/rs/zerolog/log"
	zsqlite "zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var ErrNotRecordTable = errors.New("table is not an id-keyed local table")

// Marker is the durable record of a bootstrap that has started but not completed.
type Marker struct {
	Source    string
	StartedAt time.Time
}

// Store is the on-device table set. It is the only data source read
// synchronously by the rest of the application.
type Store interface {
	Put(ctx context.Context, table replica.Table, record replica.Record) (changed bool, err error)
	BulkPut(ctx context.Context, table replica.Table, records []replica.Record) error
	Get(ctx context.Context, table replica.Table, id string) (record replica.Record, found bool, err error)
	Delete(ctx context.Context, table replica.Table, id string) error
	Clear(ctx context.Context, table replica.Table) error

	Rooms(ctx context.Context) ([]roomModel.Room, error)
	Room(ctx context.Context, id string) (roomModel.Room, bool, error)
	Guests(ctx context.Context) ([]guestModel.Guest, error)
	Guest(ctx context.Context, id string) (guestModel.Guest, bool, error)
	Bookings(ctx context.Context) ([]bookingModel.Booking, error)
	Booking(ctx context.Context, id string) (bookingModel.Booking, bool, error)
	Transactions(ctx context.Context) ([]transactionModel.Transaction, error)
	Groups(ctx context.Context) ([]groupModel.GroupProfile, error)
	Group(ctx context.Context, id string) (groupModel.GroupProfile, bool, error)

	GetSettings(ctx context.Context) (*settingsModel.HostelSettings, error)
	PutSettings(ctx context.Context, settings settingsModel.HostelSettings) (changed bool, err error)

	Snapshot(ctx context.Context) (replica.Snapshot, error)
	ReplaceAll(ctx context.Context, snapshot replica.Snapshot) error
	Empty(ctx context.Context) (bool, error)

	BeginBootstrap(ctx context.Context, source string) error
	CompleteBootstrap(ctx context.Context) error
	PendingBootstrap(ctx context.Context) (Marker, bool, error)
}

type storeImpl struct {
	pool *sqlite.Pool
	otel otel.Otel
}

// New applies the local schema and returns the store.
func New(pool *sqlite.Pool, otel otel.Otel) (Store, error) {
	store := &storeImpl{
		pool: pool,
		otel: otel,
	}

	if err := store.migrate(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *storeImpl) migrate(ctx context.Context) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("failed to take connection for schema: %w", err)
	}
	defer s.pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, schema(), nil); err != nil {
		log.Error().Err(err).Msg("failed to apply local schema")

		return fmt.Errorf("failed to apply local schema: %w", err)
	}

	return nil
}

func (s *storeImpl) withConn(ctx context.Context, fn func(conn *zsqlite.Conn) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("failed to take local connection: %w", err)
	}
	defer s.pool.Put(conn)

	return fn(conn)
}

func now() string {
	return timezone.Now().UTC().Format(time.RFC3339Nano)
}

func checkTable(table replica.Table) error {
	if !isRecordTable(table) {
		return fmt.Errorf("%w: %s", ErrNotRecordTable, table)
	}

	return nil
}

func putRecord(conn *zsqlite.Conn, table replica.Table, record replica.Record) (bool, error) {
	body, err := encode(record)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
		WHERE body IS NOT excluded.body`, table)

	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{record.RecordID(), body, now()},
	})
	if err != nil {
		return false, fmt.Errorf("failed to put %s %s: %w", table, record.RecordID(), err)
	}

	return conn.Changes() > 0, nil
}

func (s *storeImpl) Put(ctx context.Context, table replica.Table, record replica.Record) (changed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	if err = checkTable(table); err != nil {
		return false, err
	}

	if err = replica.CheckTable(table, record); err != nil {
		return false, fmt.Errorf("failed to put record: %w", err)
	}

	err = s.withConn(ctx, func(conn *zsqlite.Conn) error {
		changed, err = putRecord(conn, table, record)

		return err
	})

	return changed, err
}

func (s *storeImpl) BulkPut(ctx context.Context, table replica.Table, records []replica.Record) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".BulkPut")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	if err = checkTable(table); err != nil {
		return err
	}

	if err = replica.CheckTable(table, records...); err != nil {
		return fmt.Errorf("failed to bulk put records: %w", err)
	}

	return s.withConn(ctx, func(conn *zsqlite.Conn) (err error) {
		endFn, err := sqlitex.ImmediateTransaction(conn)
		if err != nil {
			return fmt.Errorf("failed to begin bulk put: %w", err)
		}
		defer endFn(&err)

		for _, record := range records {
			if _, err = putRecord(conn, table, record); err != nil {
				return err
			}
		}

		return nil
	})
}

func readBody(stmt *zsqlite.Stmt, col int) []byte {
	body := make([]byte, stmt.ColumnLen(col))
	stmt.ColumnBytes(col, body)

	return body
}

func (s *storeImpl) Get(ctx context.Context, table replica.Table, id string) (record replica.Record, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	if err = checkTable(table); err != nil {
		return nil, false, err
	}

	var body []byte

	err = s.withConn(ctx, func(conn *zsqlite.Conn) error {
		return sqlitex.Execute(conn, fmt.Sprintf("SELECT body FROM %s WHERE id = ?", table), &sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *zsqlite.Stmt) error {
				body = readBody(stmt, 0)
				found = true

				return nil
			},
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s %s: %w", table, id, err)
	}

	if !found {
		return nil, false, nil
	}

	record, err = replica.Decode(table, decode, body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode %s %s: %w", table, id, err)
	}

	return record, true, nil
}

func (s *storeImpl) Delete(ctx context.Context, table replica.Table, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	if err = checkTable(table); err != nil {
		return err
	}

	return s.withConn(ctx, func(conn *zsqlite.Conn) error {
		if err := sqlitex.Execute(conn, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), &sqlitex.ExecOptions{
			Args: []any{id},
		}); err != nil {
			return fmt.Errorf("failed to delete %s %s: %w", table, id, err)
		}

		return nil
	})
}

func (s *storeImpl) Clear(ctx context.Context, table replica.Table) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	return s.withConn(ctx, func(conn *zsqlite.Conn) error {
		return clearTable(conn, table)
	})
}

func clearTable(conn *zsqlite.Conn, table replica.Table) error {
	if table != replica.Settings {
		if err := checkTable(table); err != nil {
			return err
		}
	}

	if err := sqlitex.Execute(conn, "DELETE FROM "+string(table), nil); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	return nil
}

func list[T any](ctx context.Context, s *storeImpl, table replica.Table) ([]T, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".list")
	defer scope.End()

	scope.SetAttribute(constant.OtelTableAttributeKey, string(table))

	var items []T

	err := s.withConn(ctx, func(conn *zsqlite.Conn) error {
		return listConn(conn, table, &items)
	})
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return items, nil
}

func listConn[T any](conn *zsqlite.Conn, table replica.Table, items *[]T) error {
	err := sqlitex.Execute(conn, fmt.Sprintf("SELECT body FROM %s ORDER BY id", table), &sqlitex.ExecOptions{
		ResultFunc: func(stmt *zsqlite.Stmt) error {
			var item T
			if err := decode(readBody(stmt, 0), &item); err != nil {
				return err
			}

			*items = append(*items, item)

			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", table, err)
	}

	return nil
}

func one[T any](ctx context.Context, s *storeImpl, table replica.Table, id string) (T, bool, error) {
	var zero T

	record, found, err := s.Get(ctx, table, id)
	if err != nil || !found {
		return zero, found, err
	}

	typed, ok := record.(T)
	if !ok {
		return zero, false, fmt.Errorf("%w: %T", replica.ErrMismatchedTable, record)
	}

	return typed, true, nil
}

func (s *storeImpl) Rooms(ctx context.Context) ([]roomModel.Room, error) {
	return list[roomModel.Room](ctx, s, replica.Rooms)
}

func (s *storeImpl) Room(ctx context.Context, id string) (roomModel.Room, bool, error) {
	return one[roomModel.Room](ctx, s, replica.Rooms, id)
}

func (s *storeImpl) Guests(ctx context.Context) ([]guestModel.Guest, error) {
	return list[guestModel.Guest](ctx, s, replica.Guests)
}

func (s *storeImpl) Guest(ctx context.Context, id string) (guestModel.Guest, bool, error) {
	return one[guestModel.Guest](ctx, s, replica.Guests, id)
}

func (s *storeImpl) Bookings(ctx context.Context) ([]bookingModel.Booking, error) {
	return list[bookingModel.Booking](ctx, s, replica.Bookings)
}

func (s *storeImpl) Booking(ctx context.Context, id string) (bookingModel.Booking, bool, error) {
	return one[bookingModel.Booking](ctx, s, replica.Bookings, id)
}

func (s *storeImpl) Transactions(ctx context.Context) ([]transactionModel.Transaction, error) {
	return list[transactionModel.Transaction](ctx, s, replica.Transactions)
}

func (s *storeImpl) Groups(ctx context.Context) ([]groupModel.GroupProfile, error) {
	return list[groupModel.GroupProfile](ctx, s, replica.Groups)
}

func (s *storeImpl) Group(ctx context.Context, id string) (groupModel.GroupProfile, bool, error) {
	return one[groupModel.GroupProfile](ctx, s, replica.Groups, id)
}

func getSettings(conn *zsqlite.Conn) (*settingsModel.HostelSettings, error) {
	var settings *settingsModel.HostelSettings

	err := sqlitex.Execute(conn, "SELECT body FROM settings WHERE slot = ?", &sqlitex.ExecOptions{
		Args: []any{settingsSlot},
		ResultFunc: func(stmt *zsqlite.Stmt) error {
			var value settingsModel.HostelSettings
			if err := decode(readBody(stmt, 0), &value); err != nil {
				return err
			}

			settings = &value

			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func putSettings(conn *zsqlite.Conn, settings settingsModel.HostelSettings) (bool, error) {
	body, err := encode(settings)
	if err != nil {
		return false, err
	}

	err = sqlitex.Execute(conn, `INSERT INTO settings (slot, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
		WHERE body IS NOT excluded.body`, &sqlitex.ExecOptions{
		Args: []any{settingsSlot, body, now()},
	})
	if err != nil {
		return false, fmt.Errorf("failed to put settings: %w", err)
	}

	return conn.Changes() > 0, nil
}

// GetSettings returns nil when no settings were ever stored.
func (s *storeImpl) GetSettings(ctx context.Context) (settings *settingsModel.HostelSettings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".GetSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.withConn(ctx, func(conn *zsqlite.Conn) error {
		settings, err = getSettings(conn)

		return err
	})

	return settings, err
}

func (s *storeImpl) PutSettings(ctx context.Context, settings settingsModel.HostelSettings) (changed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".PutSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.withConn(ctx, func(conn *zsqlite.Conn) error {
		changed, err = putSettings(conn, settings)

		return err
	})

	return changed, err
}

func (s *storeImpl) Snapshot(ctx context.Context) (snapshot replica.Snapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.withConn(ctx, func(conn *zsqlite.Conn) (err error) {
		defer sqlitex.Save(conn)(&err)

		if snapshot.Settings, err = getSettings(conn); err != nil {
			return err
		}

		if err = listConn(conn, replica.Rooms, &snapshot.Rooms); err != nil {
			return err
		}

		if err = listConn(conn, replica.Guests, &snapshot.Guests); err != nil {
			return err
		}

		if err = listConn(conn, replica.Bookings, &snapshot.Bookings); err != nil {
			return err
		}

		if err = listConn(conn, replica.Transactions, &snapshot.Transactions); err != nil {
			return err
		}

		return listConn(conn, replica.Groups, &snapshot.Groups)
	})

	return snapshot, err
}

// ReplaceAll clears the six tables and writes the snapshot in one transaction.
func (s *storeImpl) ReplaceAll(ctx context.Context, snapshot replica.Snapshot) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".ReplaceAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.withConn(ctx, func(conn *zsqlite.Conn) (err error) {
		endFn, err := sqlitex.ImmediateTransaction(conn)
		if err != nil {
			return fmt.Errorf("failed to begin replace: %w", err)
		}
		defer endFn(&err)

		if err = clearTable(conn, replica.Settings); err != nil {
			return err
		}

		if snapshot.Settings != nil {
			if _, err = putSettings(conn, *snapshot.Settings); err != nil {
				return err
			}
		}

		for _, table := range recordTables {
			if err = clearTable(conn, table); err != nil {
				return err
			}

			for _, record := range snapshot.Records(table) {
				if _, err = putRecord(conn, table, record); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (s *storeImpl) Empty(ctx context.Context) (empty bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".Empty")
	defer scope.End()
	defer scope.TraceIfError(err)

	empty = true

	err = s.withConn(ctx, func(conn *zsqlite.Conn) error {
		for _, table := range append([]replica.Table{replica.Settings}, recordTables...) {
			err := sqlitex.Execute(conn, fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", table), &sqlitex.ExecOptions{
				ResultFunc: func(stmt *zsqlite.Stmt) error {
					if stmt.ColumnInt(0) == 1 {
						empty = false
					}

					return nil
				},
			})
			if err != nil {
				return fmt.Errorf("failed to inspect %s: %w", table, err)
			}

			if !empty {
				return nil
			}
		}

		return nil
	})

	return empty, err
}

func (s *storeImpl) BeginBootstrap(ctx context.Context, source string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".BeginBootstrap")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.withConn(ctx, func(conn *zsqlite.Conn) error {
		err := sqlitex.Execute(conn, `INSERT INTO sync_state (slot, source, started_at) VALUES (?, ?, ?)
			ON CONFLICT (slot) DO UPDATE SET source = excluded.source, started_at = excluded.started_at`, &sqlitex.ExecOptions{
			Args: []any{bootstrapSlot, source, now()},
		})
		if err != nil {
			return fmt.Errorf("failed to write bootstrap marker: %w", err)
		}

		return nil
	})
}

func (s *storeImpl) CompleteBootstrap(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".CompleteBootstrap")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.withConn(ctx, func(conn *zsqlite.Conn) error {
		if err := sqlitex.Execute(conn, "DELETE FROM sync_state WHERE slot = ?", &sqlitex.ExecOptions{
			Args: []any{bootstrapSlot},
		}); err != nil {
			return fmt.Errorf("failed to clear bootstrap marker: %w", err)
		}

		return nil
	})
}

func (s *storeImpl) PendingBootstrap(ctx context.Context) (marker Marker, pending bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelLocalStoreScopeName, constant.OtelLocalStoreScopeName+".PendingBootstrap")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.withConn(ctx, func(conn *zsqlite.Conn) error {
		return sqlitex.Execute(conn, "SELECT source, started_at FROM sync_state WHERE slot = ?", &sqlitex.ExecOptions{
			Args: []any{bootstrapSlot},
			ResultFunc: func(stmt *zsqlite.Stmt) error {
				marker.Source = stmt.ColumnText(0)
				marker.StartedAt, _ = time.Parse(time.RFC3339Nano, stmt.ColumnText(1))
				pending = true

				return nil
			},
		})
	})
	if err != nil {
		return Marker{}, false, fmt.Errorf("failed to read bootstrap marker: %w", err)
	}

	return marker, pending, nil
}
