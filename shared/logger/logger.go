package logger

import (
	"hotelsphere/config"
	"hotelsphere/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger installs a console logger until the configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// Configure applies the configured level. Outside development the logger
// writes JSON lines to out tagged with the desk's client id.
func Configure(config *config.Config, out io.Writer) {
	level := ParseLevel(config.Server.LogLevel)
	zerolog.SetGlobalLevel(level)

	if config.Server.Env == constant.ServerEnvDevelopment {
		log.Debug().Str("loglevel", level.String()).Msg("Console logging enabled.")

		return
	}

	context := zerolog.New(out).With().Timestamp()

	if config.App.Name != "" {
		context = context.Str("app", config.App.Name)
	}

	if config.App.ClientID != "" {
		context = context.Str("client_id", config.App.ClientID)
	}

	log.Logger = context.Logger()
	log.Debug().Str("loglevel", level.String()).Msg("JSON logging enabled.")
}

// ParseLevel falls back to info for empty or unknown names.
func ParseLevel(value string) zerolog.Level {
	if value == "" {
		return defaultLevel
	}

	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return defaultLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
