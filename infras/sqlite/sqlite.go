package sqlite

import (
	"context"
	"errors"
	"fmt"
	"hotelsphere/config"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	defaultPath     = "data/hotelsphere.db"
	minimumPoolSize = 4
)

var errEmptyPath = errors.New("sqlite path is required")

// Pool is the connection pool backing the on-device store. Connections are
// not safe for concurrent use; every goroutine takes its own and puts it back.
type Pool struct {
	inner *sqlitex.Pool
	path  string
}

// New opens the pool configured under LOCAL_*.
func New(config *config.Config) (*Pool, error) {
	path := config.Local.Path
	if path == "" {
		path = defaultPath
	}

	return Open(path, config.Local.PoolSize)
}

// Open creates the pool at path. The parent directory is created when
// missing. A non-positive size defaults to the number of CPUs, minimum four.
func Open(path string, size int) (*Pool, error) {
	if path == "" {
		return nil, errEmptyPath
	}

	if size <= 0 {
		size = max(runtime.NumCPU(), minimumPoolSize)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	inner, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    size,
		PrepareConn: prepareConnection,
	})
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open sqlite pool")

		return nil, fmt.Errorf("failed to open sqlite pool at %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("pool_size", size).Msg("Opened local sqlite store")

	return &Pool{inner: inner, path: path}, nil
}

func (p *Pool) Take(ctx context.Context) (*sqlite.Conn, error) {
	conn, err := p.inner.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to take sqlite connection: %w", err)
	}

	return conn, nil
}

func (p *Pool) Put(conn *sqlite.Conn) {
	p.inner.Put(conn)
}

func (p *Pool) Path() string {
	return p.path
}

func (p *Pool) Close() error {
	if err := p.inner.Close(); err != nil {
		log.Error().Err(err).Str("path", p.path).Msg("failed to close sqlite pool")

		return fmt.Errorf("failed to close sqlite pool: %w", err)
	}

	log.Info().Str("path", p.path).Msg("Closed local sqlite store")

	return nil
}

func prepareConnection(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=OFF",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	return nil
}
