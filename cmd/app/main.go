package main

import (
	"context"
	"hotelsphere/config"
	"hotelsphere/di"
	"hotelsphere/internal/backup"
	"hotelsphere/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg, os.Stdout)

	app, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	ctx, cancel := context.WithCancel(context.Background())

	result, err := app.Coordinator.Bootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap local store")
	}

	log.Info().
		Str("branch", string(result.Branch)).
		Bool("resumed", result.Resumed).
		Str("property", result.Settings.Name).
		Msg("Local store ready")

	if cfg.Sync.Subscribe {
		go func() {
			if err := app.Coordinator.Run(ctx); err != nil {
				log.Error().Err(err).Msg("Change feed subscription stopped")
			}
		}()
	}

	if cfg.Backup.Enable {
		scheduler, err := backup.NewScheduler(app.Backup, cfg.Backup.Schedule)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule backups")
		}

		scheduler.Start()

		app.HTTP.OnShutdown(func(ctx context.Context) error {
			scheduler.Stop(ctx)

			return nil
		})
	}

	app.HTTP.OnShutdown(func(context.Context) error {
		cancel()
		cleanup()

		return nil
	})

	app.HTTP.Serve()
}
