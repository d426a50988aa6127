package postgres_test

import (
	"context"
	"net/url"
	"testing"

	"hotelsphere/config"
	"hotelsphere/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "hs_"

	endpoint := config.PostgresEndpoint{
		Host:     "replica.local",
		Port:     "6432",
		Username: "reader",
		Password: "s3cret/with:colon",
		Name:     "replica",
		Timezone: "Asia/Kolkata",
		SSLMode:  "require",
	}

	dsn := postgres.DSN(cfg, endpoint, url.Values{"application_name": {"desk-1"}})

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)

	password, _ := parsed.User.Password()
	assert.Equal(t, "s3cret/with:colon", password)
	assert.Equal(t, "replica.local:6432", parsed.Host)
	assert.Equal(t, "/hs_replica", parsed.Path)
	assert.Equal(t, "require", parsed.Query().Get("sslmode"))
	assert.Equal(t, "Asia/Kolkata", parsed.Query().Get("timezone"))
	assert.Equal(t, "desk-1", parsed.Query().Get("application_name"))
}

func TestConnectionAvailability(t *testing.T) {
	var missing *postgres.Connection

	assert.False(t, missing.Available())
	assert.False(t, (&postgres.Connection{}).Available())
	assert.Error(t, (&postgres.Connection{}).Ping(context.Background()))
	assert.NotPanics(t, missing.Close)
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"))
	require.True(t, conn.Available())

	mock.ExpectPing()
	require.NoError(t, conn.Ping(context.Background()))

	mock.ExpectClose()
	conn.Close()
	assert.NoError(t, mock.ExpectationsWereMet())
}
