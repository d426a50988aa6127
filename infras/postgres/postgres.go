package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"hotelsphere/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var errNoConnection = errors.New("postgres connection was never established")

// Connection holds the read and write pools of the remote replica. Either
// pool may be nil when the database was unreachable at startup; callers check
// Available before issuing queries.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	conn := &Connection{
		Read:  connect(config, "read", config.DB.Postgres.Read),
		Write: connect(config, "write", config.DB.Postgres.Write),
	}

	if !conn.Available() {
		log.Warn().Msg("Remote replica unreachable at startup, continuing in local-only mode")
	}

	return conn
}

// NewFromDB wraps an already opened handle for both reads and writes.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{
		Read:  db,
		Write: db,
	}
}

func (c *Connection) Available() bool {
	return c != nil && c.Read != nil && c.Write != nil
}

// Ping verifies the write pool is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if !c.Available() {
		return errNoConnection
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	if c == nil {
		return
	}

	if c.Read != nil {
		_ = c.Read.Close()
	}

	if c.Write != nil && c.Write != c.Read {
		_ = c.Write.Close()
	}
}

// DSN renders the connection URL of one replica pool. extra is merged into
// the query string.
func DSN(config *config.Config, endpoint config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}

	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + config.DB.Postgres.Prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect retries until the pool answers or the retry budget is spent. It
// returns nil so the desk can start in local-only mode.
func connect(config *config.Config, role string, endpoint config.PostgresEndpoint) *sqlx.DB {
	dsn := DSN(config, endpoint, nil)
	attempts := max(config.DB.Postgres.MaxRetry, 1)
	wait := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second

	logger := log.With().
		Str("role", role).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("database", config.DB.Postgres.Prefix+endpoint.Name).
		Logger()

	for attempt := range attempts {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)

			logger.Info().Msg("Connected to replica")

			return db
		}

		logger.Warn().Err(err).Int("attempt", attempt+1).Int("of", attempts).Msg("Failed connecting to replica")

		if attempt+1 < attempts {
			time.Sleep(wait)
		}
	}

	return nil
}
