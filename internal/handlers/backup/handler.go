package backup

import (
	"hotelsphere/infras/otel"
	"hotelsphere/internal/backup"
	"hotelsphere/shared"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/failure"
	"hotelsphere/shared/timezone"
	"hotelsphere/shared/validator"
	"hotelsphere/transport/http/response"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamCompress = "compress"
	maxDocumentSize    = 64 << 20
)

type restoreRequest struct {
	Key string `json:"key" validate:"required"`
}

type Handler struct {
	service backup.Service
	otel    otel.Otel
}

func New(service backup.Service, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/backups", func(routerGroup chi.Router) {
		routerGroup.Get("/export", handler.Export)
		routerGroup.Post("/import", handler.Import)
		routerGroup.Post("/archive", handler.Archive)
		routerGroup.Post("/restore", handler.Restore)
	})
}

// Export downloads the local data as a backup document.
// @Summary Export backup
// @Tags Backup
// @Produce json
// @Produce application/zstd
// @Param compress query boolean false "Compress the document with zstd"
// @Success 200 {file} file
// @Failure 500 {object} response.Error
// @Router /v1/backups/export [get]
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	compress := false
	if value := shared.ConvertStringToBool(r.URL.Query().Get(queryParamCompress)); value != nil {
		compress = *value
	}

	doc, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export backup")

		response.WithError(w, err)

		return
	}

	data, err := backup.Encode(doc, compress)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to encode backup")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Backup exported by " + operator)

	response.WithAttachment(w, backup.ContentType(compress), backup.FileName(timezone.Now(), compress), data)
}

// Import replaces the local data with an uploaded backup document.
// @Summary Import backup
// @Description Accepts plain or zstd-compressed documents, including exports of the browser client.
// @Tags Backup
// @Accept json
// @Accept application/zstd
// @Produce json
// @Success 200 {object} response.Data[backup.Summary]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/backups/import [post]
func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Import")
	defer scope.End()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read backup upload")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	doc, err := handler.service.Import(ctx, data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import backup")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Backup imported by " + operator)

	response.WithJSON(w, http.StatusOK, doc.Summary())
}

// Archive writes a backup to the server backup directory.
// @Summary Archive backup
// @Tags Backup
// @Produce json
// @Success 201 {object} response.Data[backup.Archive]
// @Failure 500 {object} response.Error
// @Router /v1/backups/archive [post]
func (handler *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Archive")
	defer scope.End()

	archive, err := handler.service.Archive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to archive backup")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Backup archived to " + archive.Path)

	response.WithJSON(w, http.StatusCreated, archive)
}

// Restore imports an archive previously uploaded to object storage.
// @Summary Restore backup
// @Tags Backup
// @Accept json
// @Produce json
// @Param request body restoreRequest true "Object key"
// @Success 200 {object} response.Data[backup.Summary]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/backups/restore [post]
func (handler *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Restore")
	defer scope.End()

	req := restoreRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	doc, err := handler.service.Restore(ctx, req.Key)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", req.Key).Msg("failed to restore backup")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Backup " + req.Key + " restored by " + operator)

	response.WithJSON(w, http.StatusOK, doc.Summary())
}
