package redis

import (
	"context"
	"hotelsphere/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New connects the bill cache and rate limiter store. An unreachable server is
// only logged: cache reads miss and the limiter lets requests through until
// redis comes back.
func New(config *config.Config) (*goRedis.Client, func()) {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("host", primary.Host).Msg("Redis unreachable, running without cache")
	} else {
		log.Info().
			Int("db", primary.DB).
			Str("host", primary.Host).
			Str("port", primary.Port).
			Msg("Connected to Redis")
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
