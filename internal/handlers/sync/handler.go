package sync

import (
	"errors"
	"hotelsphere/infras/otel"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/domains/frontdesk/service"
	"hotelsphere/internal/replica/remote"
	"hotelsphere/internal/syncer"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/failure"
	"hotelsphere/shared/validator"
	"hotelsphere/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	coordinator syncer.Coordinator
	service     service.FrontDesk
	otel        otel.Otel
}

func New(coordinator syncer.Coordinator, service service.FrontDesk, otel otel.Otel) Handler {
	return Handler{
		coordinator: coordinator,
		service:     service,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Get("/health", handler.GetHealth)
		routerGroup.Post("/resync", handler.ForceResync)
		routerGroup.Post("/wipe", handler.Wipe)
	})
}

// GetHealth reports the sync indicator.
// @Summary Sync health
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[syncer.Health]
// @Router /v1/sync/health [get]
func (handler *Handler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.coordinator.Health())
}

// resyncError maps coordinator failures to client-facing codes.
func resyncError(err error) error {
	switch {
	case errors.Is(err, syncer.ErrRemoteEmpty):
		return failure.Conflict(err.Error()) // nolint:wrapcheck
	case remote.Classify(err) == remote.KindUnreachable:
		return failure.RemoteUnavailable
	default:
		return err
	}
}

// ForceResync replaces local data with the remote snapshot.
// @Summary Force resync
// @Description Local data is left untouched when the replica is unreachable or empty.
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[syncer.Health]
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/resync [post]
func (handler *Handler) ForceResync(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ForceResync")
	defer scope.End()

	if err := handler.coordinator.ForceResync(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resync from remote")

		response.WithError(w, resyncError(err))

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Resync forced by " + operator)

	response.WithJSON(w, http.StatusOK, handler.coordinator.Health())
}

// Wipe clears every local table. The replica is not touched.
// @Summary Wipe local data
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body dto.WipeRequest true "Confirmation"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/wipe [post]
func (handler *Handler) Wipe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Wipe")
	defer scope.End()

	req := dto.WipeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Wipe(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to wipe local data")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Local data wiped by " + operator)

	response.WithMessage(w, http.StatusOK, "Local data wiped")
}
