package bill

import (
	"hotelsphere/infras/otel"
	"hotelsphere/internal/domains/frontdesk/service"
	"hotelsphere/shared/constant"
	"hotelsphere/transport/http/response"
	"net/http"

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
	router.Get("/public/bills/{id}", handler.GetBill)
}

// GetBill renders the read-only bill a guest opens from a shared link.
// @Summary Public bill
// @Tags Bill
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bills/{id} [get]
func (handler *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBill")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bill, err := handler.service.PublicBill(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get public bill")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bill)
}
