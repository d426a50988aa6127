package booking

import (
	"hotelsphere/infras/otel"
	"hotelsphere/internal/domains/frontdesk/model/dto"
	"hotelsphere/internal/domains/frontdesk/service"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/validator"
	"hotelsphere/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamMode      = "mode"
	queryParamSelection = "selection"
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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Put("/", handler.WriteBookings)
		routerGroup.Post("/check-in", handler.CheckIn)
		routerGroup.Post("/reservations", handler.Reserve)

		routerGroup.Route("/{id}", func(bookingGroup chi.Router) {
			bookingGroup.Get("/folio", handler.GetFolio)
			bookingGroup.Post("/charges", handler.AddCharge)
			bookingGroup.Post("/payments", handler.PostPayment)
			bookingGroup.Post("/payments/combined", handler.PostCombinedPayment)
			bookingGroup.Post("/checkout", handler.Checkout)
			bookingGroup.Post("/cancel", handler.CancelReservation)
			bookingGroup.Post("/shift", handler.ShiftRoom)
		})
	})
}

// GetBookings lists every booking.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]bookingModel.Booking]
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.Bookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// WriteBookings stores bookings as given. Bookings referencing an unknown
// guest are reported back as rejected.
// @Summary Write bookings
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.WriteBookingsRequest true "Bookings"
// @Success 200 {object} response.Data[model.WriteResult]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [put]
func (handler *Handler) WriteBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WriteBookings")
	defer scope.End()

	req := dto.WriteBookingsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.WriteBookings(ctx, req.Bookings)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to write bookings")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Bookings written by " + operator)

	response.WithJSON(w, http.StatusOK, result)
}

// CheckIn admits a guest into one or more rooms starting today.
// @Summary Check in
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.AdmitRequest true "Guest and stays"
// @Success 201 {object} response.Data[dto.AdmitResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/check-in [post]
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.AdmitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Guest checked in as " + res.BookingNo + " by " + operator)

	response.WithJSON(w, http.StatusCreated, res)
}

// Reserve books one or more rooms for a future stay.
// @Summary Reserve
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.AdmitRequest true "Guest and stays"
// @Success 201 {object} response.Data[dto.AdmitResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/reservations [post]
func (handler *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	req := dto.AdmitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reserve")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Reservation " + res.BookingNo + " created by " + operator)

	response.WithJSON(w, http.StatusCreated, res)
}

func folioRequest(r *http.Request) dto.FolioRequest {
	query := r.URL.Query()

	req := dto.FolioRequest{
		Mode: dto.FolioMode(query.Get(queryParamMode)),
	}

	for _, value := range query[queryParamSelection] {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.Selection = append(req.Selection, id)
			}
		}
	}

	return req
}

// GetFolio computes the bill of a booking.
// @Summary Get folio
// @Description Single mode bills the booking alone, combined mode bills every live booking of the group and split mode bills the selected group bookings.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param mode query string false "single, combined or split"
// @Param selection query string false "Comma separated booking IDs for split mode"
// @Success 200 {object} response.Data[folio.Folio]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/folio [get]
func (handler *Handler) GetFolio(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFolio")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := folioRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate folio query")

		response.WithError(w, err)

		return
	}

	bill, err := handler.service.Folio(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to compute folio")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Folio computed successfully")

	response.WithJSON(w, http.StatusOK, bill)
}

// AddCharge posts an extra charge to a booking.
// @Summary Add charge
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ChargeRequest true "Charge"
// @Success 201 {object} response.Data[bookingModel.Booking]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [post]
func (handler *Handler) AddCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.ChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.AddCharge(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to add charge")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Charge added by " + operator)

	response.WithJSON(w, http.StatusCreated, booking)
}

// PostPayment records a payment against a single booking.
// @Summary Post payment
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PaymentRequest true "Payment"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
func (handler *Handler) PostPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.PaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PostPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to post payment")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Payment " + res.Transaction.ID + " posted by " + operator)

	response.WithJSON(w, http.StatusCreated, res)
}

// PostCombinedPayment spreads one payment over every live booking of the group.
// @Summary Post combined payment
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PaymentRequest true "Payment"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments/combined [post]
func (handler *Handler) PostCombinedPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostCombinedPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.PaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PostCombinedPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to post combined payment")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Combined payment " + res.Transaction.ID + " posted by " + operator)

	response.WithJSON(w, http.StatusCreated, res)
}

// Checkout completes a booking, or the whole group when combined is set.
// @Summary Check out
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckoutRequest true "Checkout options"
// @Success 200 {object} response.Data[dto.CheckoutResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkout [post]
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.CheckoutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Checkout(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Checked out " + strings.Join(res.Completed, ",") + " by " + operator)

	response.WithJSON(w, http.StatusOK, res)
}

// CancelReservation cancels a booking that has not been checked in.
// @Summary Cancel reservation
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[bookingModel.Booking]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.CancelReservation(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Reservation cancelled by " + operator)

	response.WithJSON(w, http.StatusOK, booking)
}

// ShiftRoom moves a live booking to another room.
// @Summary Shift room
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ShiftRoomRequest true "Target room"
// @Success 200 {object} response.Data[bookingModel.Booking]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/shift [post]
func (handler *Handler) ShiftRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ShiftRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.ShiftRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.ShiftRoom(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to shift room")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Booking shifted to room " + booking.RoomID + " by " + operator)

	response.WithJSON(w, http.StatusOK, booking)
}
