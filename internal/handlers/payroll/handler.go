package payroll

import (
	"catering/infras/otel"
	"catering/internal/domains/payroll/service"
	"catering/shared"
	"catering/shared/constant"
	"catering/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payroll
	otel    otel.Otel
}

func New(service service.Payroll, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/employee/payroll", handler.GetPayroll)
}

// GetPayroll
// @Summary Earnings of the logged in employee
// @Description Sums the menu prices of every completed booking assigned to the caller.
// @Tags Payroll
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PayrollResponse
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employee/payroll [get]
func (handler *Handler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayroll")
	defer scope.End()

	res, err := handler.service.ComputeForEmployee(ctx, shared.GetPrincipal(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute payroll")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
