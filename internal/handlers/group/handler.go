package group

import (
	"hotelsphere/infras/otel"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/domains/frontdesk/service"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/validator"
	"hotelsphere/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FrontDesk
	otel    otel.Otel
}

func New(service service.FrontDesk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/groups", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGroups)
		routerGroup.Put("/", handler.UpsertGroup)
		routerGroup.Post("/{id}/status", handler.SetGroupStatus)
	})
}

// GetGroups lists every group profile.
// @Summary Get groups
// @Tags Group
// @Produce json
// @Success 200 {object} response.Data[[]groupModel.GroupProfile]
// @Failure 500 {object} response.Error
// @Router /v1/groups [get]
func (handler *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroups")
	defer scope.End()

	groups, err := handler.service.Groups(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get groups")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Groups retrieved successfully")

	response.WithJSON(w, http.StatusOK, groups)
}

// UpsertGroup creates a group profile or replaces the one with the same ID.
// @Summary Create or update a group
// @Tags Group
// @Accept json
// @Produce json
// @Param request body dto.GroupRequest true "Group"
// @Success 200 {object} response.Data[groupModel.GroupProfile]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/groups [put]
func (handler *Handler) UpsertGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertGroup")
	defer scope.End()

	req := dto.GroupRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	group, err := handler.service.UpsertGroup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save group")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Group " + group.GroupName + " saved by " + operator)

	response.WithJSON(w, http.StatusOK, group)
}

// SetGroupStatus moves every booking of a group to the requested status.
// Bookings for which the transition is not allowed are reported as skipped.
// @Summary Set group booking status
// @Tags Group
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.GroupStatusRequest true "Status"
// @Success 200 {object} response.Data[dto.GroupStatusResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/groups/{id}/status [post]
func (handler *Handler) SetGroupStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetGroupStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.GroupStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GroupStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to set group status")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent(strconv.Itoa(len(res.Updated)) + " group bookings set to " + string(req.Status) + " by " + operator)

	response.WithJSON(w, http.StatusOK, res)
}
