package repository_test

import (
	"context"
	"reflect"
	"regexp"
	"testing"

	otelMocks "hotelsphere/infras/otel/mocks"
	"hotelsphere/infras/postgres"
	"hotelsphere/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Audit struct {
	UpdatedAt string `db:"updated_at"`
}

type room struct {
	ID     string `db:"id"`
	Number string `db:"number"`
	Notes  string `db:"-"`
	Label  string
	Audit
}

func newTable(t *testing.T) (repository.Table[room], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"))

	return repository.NewTable[room]("room", "rooms", "id", conn, otelMocks.NewOtel()), mock
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "number", "updated_at"}, repository.Columns(reflect.TypeOf(room{})))
}

func TestUpsertQuery(t *testing.T) {
	table, _ := newTable(t)

	assert.Equal(t,
		"INSERT INTO rooms (id, number, updated_at) VALUES (:id, :number, :updated_at) "+
			"ON CONFLICT (id) DO UPDATE SET number = EXCLUDED.number, updated_at = EXCLUDED.updated_at",
		table.UpsertQuery())
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		wantFound bool
		want      room
	}{
		{
			name:      "present",
			rows:      sqlmock.NewRows([]string{"id", "number", "updated_at"}).AddRow("r101", "101", "2024-03-01"),
			wantFound: true,
			want:      room{ID: "r101", Number: "101", Audit: Audit{UpdatedAt: "2024-03-01"}},
		},
		{
			name: "missing",
			rows: sqlmock.NewRows([]string{"id", "number", "updated_at"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, mock := newTable(t)

			mock.ExpectPrepare(regexp.QuoteMeta("SELECT id, number, updated_at FROM rooms WHERE id = $1")).
				ExpectQuery().
				WithArgs("r101").
				WillReturnRows(tt.rows)

			got, found, err := table.Find(context.Background(), "r101")
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestList(t *testing.T) {
	table, mock := newTable(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT id, number, updated_at FROM rooms ORDER BY id ASC")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "updated_at"}).
			AddRow("r101", "101", "").
			AddRow("r102", "102", ""))

	rows, err := table.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "r102", rows[1].ID)
}

func TestListEmptyTable(t *testing.T) {
	table, mock := newTable(t)

	mock.ExpectPrepare(regexp.QuoteMeta("FROM rooms")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "updated_at"}))

	rows, err := table.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestUpsertReportsInsert(t *testing.T) {
	table, mock := newTable(t)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO rooms")).
		ExpectQuery().
		WithArgs("r101", "101", "").
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))

	inserted, err := table.Upsert(context.Background(), room{ID: "r101", Number: "101"})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemove(t *testing.T) {
	table, mock := newTable(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs("r101").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, table.Remove(context.Background(), "r101"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnavailable(t *testing.T) {
	table := repository.NewTable[room]("room", "rooms", "id", &postgres.Connection{}, otelMocks.NewOtel())
	ctx := context.Background()

	_, _, err := table.Find(ctx, "r101")
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	_, err = table.List(ctx)
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	_, err = table.Upsert(ctx, room{ID: "r101"})
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	assert.ErrorIs(t, table.Remove(ctx, "r101"), repository.ErrUnavailable)
}
