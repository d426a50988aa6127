package di

import (
	"hotelsphere/config"
	"hotelsphere/helper"
	"hotelsphere/infras/kafka"
	"hotelsphere/infras/otel"
	"hotelsphere/infras/postgres"
	"hotelsphere/infras/s3"
	"hotelsphere/infras/sqlite"
	"hotelsphere/internal/backup"
	"hotelsphere/internal/replica/remote"
	"hotelsphere/internal/syncer"
	"hotelsphere/transport/http"

	"github.com/rs/zerolog/log"
)

// Application is the HTTP server together with the services the process
// drives outside of requests.
type Application struct {
	HTTP        *http.HTTP
	Coordinator syncer.Coordinator
	Backup      backup.Service
}

func provideSQLite(cfg *config.Config) (*sqlite.Pool, func(), error) {
	pool, err := sqlite.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	cleanup := func() {
		if err := pool.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close local store")
		}
	}

	return pool, cleanup, nil
}

func providePostgres(cfg *config.Config) (*postgres.Connection, func()) {
	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Migrate(cfg, helper.DirectionUp); err != nil {
			log.Warn().Err(err).Msg("Replica migration failed, continuing with the current schema")
		}
	}

	conn := postgres.New(cfg)

	return conn, conn.Close
}

func provideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}

// provideFeed returns nil when no broker is configured, which keeps the
// replica writable and the coordinator running without realtime updates.
func provideFeed(client kafka.Client, cfg *config.Config, otel otel.Otel) remote.Feed {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn().Msg("No kafka brokers configured, change feed disabled")

		return nil
	}

	return remote.NewFeed(client, cfg, otel)
}

// provideStorage returns nil when no bucket is configured, which disables
// archive uploads and restores.
func provideStorage(cfg *config.Config, otel otel.Otel) s3.S3 {
	if cfg.External.S3.BucketName == "" {
		return nil
	}

	return s3.New(cfg, otel)
}
