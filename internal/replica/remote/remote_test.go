package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelsphere/config"
	otelMocks "hotelsphere/infras/otel/mocks"
	"hotelsphere/infras/postgres"
	bookingModel "hotelsphere/internal/domains/booking/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/remote"
	remoteMocks "hotelsphere/internal/replica/remote/mocks"
	gRepo "hotelsphere/shared/repository"
)

func newReplica(t *testing.T) (remote.Replica, sqlmock.Sqlmock, *remoteMocks.MockFeed) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)
	feed := remoteMocks.NewMockFeed(ctrl)

	cfg := &config.Config{}
	cfg.App.ClientID = "desk-1"

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"))

	return remote.New(conn, feed, cfg, otelMocks.NewOtel()), mock, feed
}

func TestReplica_UpsertPublishesEvents(t *testing.T) {
	tests := []struct {
		name     string
		inserted bool
		want     replica.EventType
	}{
		{name: "new row", inserted: true, want: replica.EventInsert},
		{name: "existing row", inserted: false, want: replica.EventUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repl, mock, feed := newReplica(t)

			mock.ExpectBegin()
			mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO rooms")).
				ExpectQuery().
				WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(tt.inserted))
			mock.ExpectCommit()

			feed.EXPECT().
				Publish(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, events ...replica.ChangeEvent) error {
					require.Len(t, events, 1)
					assert.Equal(t, replica.Rooms, events[0].Table)
					assert.Equal(t, tt.want, events[0].EventType)
					assert.Equal(t, "desk-1", events[0].Origin)

					id, err := events[0].OldID()
					require.NoError(t, err)
					assert.Equal(t, "r101", id)

					return nil
				})

			err := repl.Upsert(context.Background(), replica.Rooms, roomModel.Room{ID: "r101", Number: "101", Status: roomModel.StatusVacant})
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReplica_UpsertPublishFailureIsNotFatal(t *testing.T) {
	repl, mock, feed := newReplica(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO bookings")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))
	mock.ExpectCommit()

	feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	err := repl.Upsert(context.Background(), replica.Bookings, &bookingModel.Booking{ID: "b1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplica_UpsertSchemaMismatchRollsBack(t *testing.T) {
	repl, mock, _ := newReplica(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO rooms")).
		ExpectQuery().
		WillReturnError(&pq.Error{Code: "42703", Message: `column "inventory" does not exist`})
	mock.ExpectRollback()

	err := repl.Upsert(context.Background(), replica.Rooms, roomModel.Room{ID: "r101"})
	require.Error(t, err)
	assert.Equal(t, remote.KindSchemaMismatch, remote.Classify(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplica_UpsertRejectsForeignRecords(t *testing.T) {
	repl, _, _ := newReplica(t)

	err := repl.Upsert(context.Background(), replica.Rooms, bookingModel.Booking{ID: "b1"})
	assert.ErrorIs(t, err, replica.ErrMismatchedTable)
}

func TestReplica_Unavailable(t *testing.T) {
	repl := remote.New(&postgres.Connection{}, nil, &config.Config{}, otelMocks.NewOtel())
	ctx := context.Background()

	err := repl.Upsert(ctx, replica.Rooms, roomModel.Room{ID: "r101"})
	assert.ErrorIs(t, err, gRepo.ErrUnavailable)
	assert.Equal(t, remote.KindUnreachable, remote.Classify(err))

	_, err = repl.FetchAll(ctx)
	assert.Equal(t, remote.KindUnreachable, remote.Classify(err))

	assert.Equal(t, remote.KindUnreachable, remote.Classify(repl.Ping(ctx)))
}

func TestReplica_DeletePublishesEvent(t *testing.T) {
	repl, mock, feed := newReplica(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	feed.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events ...replica.ChangeEvent) error {
			require.Len(t, events, 1)
			assert.Equal(t, replica.EventDelete, events[0].EventType)

			var old map[string]string
			require.NoError(t, json.Unmarshal(events[0].Old, &old))
			assert.Equal(t, "b1", old["id"])

			return nil
		})

	require.NoError(t, repl.Delete(context.Background(), replica.Bookings, "b1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplica_FetchSettings(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		repl, mock, _ := newReplica(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM settings")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		settings, err := repl.FetchSettings(context.Background())
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("stored row", func(t *testing.T) {
		repl, mock, _ := newReplica(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM settings")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tax_rate", "agents"}).
				AddRow("primary", "HotelSphere Pro", 12.0, []byte(`[{"name":"Direct","commission":0}]`)))

		settings, err := repl.FetchSettings(context.Background())
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, "HotelSphere Pro", settings.Name)
		assert.InDelta(t, 12.0, settings.TaxRate, 0.001)
		assert.Equal(t, []settingsModel.Agent{{Name: "Direct"}}, []settingsModel.Agent(settings.Agents))
	})
}

func TestReplica_FetchAll(t *testing.T) {
	repl, mock, _ := newReplica(t)

	mock.ExpectPrepare(regexp.QuoteMeta("FROM settings")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("primary", "HotelSphere Pro"))
	mock.ExpectPrepare(regexp.QuoteMeta("FROM rooms")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "status"}).
			AddRow("r101", "101", "VACANT").
			AddRow("r102", "102", "OCCUPIED"))
	mock.ExpectPrepare(regexp.QuoteMeta("FROM guests")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("g1", "Asha"))
	mock.ExpectPrepare(regexp.QuoteMeta("FROM bookings")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "status"}).AddRow("b1", "r102", "ACTIVE"))
	mock.ExpectPrepare(regexp.QuoteMeta("FROM transactions")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectPrepare(regexp.QuoteMeta("FROM groups")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	snapshot, err := repl.FetchAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snapshot.Settings)
	assert.Len(t, snapshot.Rooms, 2)
	assert.Len(t, snapshot.Guests, 1)
	assert.Equal(t, roomModel.StatusOccupied, snapshot.Rooms[1].Status)
	assert.Equal(t, bookingModel.StatusActive, snapshot.Bookings[0].Status)
	assert.Empty(t, snapshot.Transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplica_FetchAllAbortsOnFailure(t *testing.T) {
	repl, mock, _ := newReplica(t)

	mock.ExpectPrepare(regexp.QuoteMeta("FROM settings")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectPrepare(regexp.QuoteMeta("FROM rooms")).
		ExpectQuery().
		WillReturnError(&pq.Error{Code: "42P01", Message: `relation "rooms" does not exist`})

	_, err := repl.FetchAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, remote.KindSchemaMismatch, remote.Classify(err))
}
