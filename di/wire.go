//go:build wireinject
// +build wireinject

package di

import (
	"hotelsphere/config"
	"hotelsphere/infras/otel"
	"hotelsphere/infras/redis"
	"hotelsphere/internal/backup"
	"hotelsphere/internal/handlers/bill"
	"hotelsphere/internal/handlers/booking"
	"hotelsphere/internal/handlers/group"
	"hotelsphere/internal/handlers/guest"
	"hotelsphere/internal/handlers/room"
	"hotelsphere/internal/handlers/settings"
	"hotelsphere/internal/handlers/transaction"
	"hotelsphere/internal/replica/local"
	"hotelsphere/internal/replica/remote"
	"hotelsphere/internal/syncer"
	"hotelsphere/shared/cache"
	"hotelsphere/transport/http"
	"hotelsphere/transport/http/middleware"
	"hotelsphere/transport/http/router"

	frontdeskService "hotelsphere/internal/domains/frontdesk/service"
	backupHandler "hotelsphere/internal/handlers/backup"
	syncHandler "hotelsphere/internal/handlers/sync"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	provideSQLite,
	providePostgres,
	provideKafka,
	provideStorage,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var replication = wire.NewSet(
	local.New,
	provideFeed,
	remote.New,
	syncer.DefaultPolicy,
	syncer.New,
)

var domains = wire.NewSet(
	frontdeskService.New,
	backup.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	room.New,
	booking.New,
	guest.New,
	group.New,
	settings.New,
	transaction.New,
	syncHandler.New,
	backupHandler.New,
	bill.New,
	router.New,
)

func InitializeService() (*Application, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		replication,
		domains,
		routing,
		http.New,
		wire.Struct(new(Application), "*"),
	)

	return nil, nil, nil
}
