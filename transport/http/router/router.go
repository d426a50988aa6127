package router

import (
	"hotelsphere/internal/handlers/backup"
	"hotelsphere/internal/handlers/bill"
	"hotelsphere/internal/handlers/booking"
	"hotelsphere/internal/handlers/group"
	"hotelsphere/internal/handlers/guest"
	"hotelsphere/internal/handlers/room"
	"hotelsphere/internal/handlers/settings"
	"hotelsphere/internal/handlers/transaction"

	"github.com/go-chi/chi/v5"

	syncHandler "hotelsphere/internal/handlers/sync"
)

type DomainHandlers struct {
	Room        room.Handler
	Booking     booking.Handler
	Guest       guest.Handler
	Group       group.Handler
	Settings    settings.Handler
	Transaction transaction.Handler
	Sync        syncHandler.Handler
	Backup      backup.Handler
	Bill        bill.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Group.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Transaction.Router(routerGroup)
		r.DomainHandlers.Sync.Router(routerGroup)
		r.DomainHandlers.Backup.Router(routerGroup)
		r.DomainHandlers.Bill.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
