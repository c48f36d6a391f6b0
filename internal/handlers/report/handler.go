package report

import (
	"catering/infras/otel"
	"catering/internal/domains/report/service"
	"catering/shared"
	"catering/shared/constant"
	"catering/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/reports/summary", handler.Summary)
}

// Summary
// @Summary Admin dashboard summary
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SummaryResponse
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/summary [get]
func (handler *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".report.Summary")
	defer scope.End()

	res, err := handler.service.Summary(ctx, shared.GetPrincipal(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
