package employee

import (
	"catering/infras/otel"
	"catering/internal/domains/employee/model"
	"catering/internal/domains/employee/model/dto"
	"catering/internal/domains/employee/service"
	"catering/shared"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/validator"
	"catering/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.GetAll)
		r.Get("/{id}", handler.Get)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})

	router.Get("/employee/profile", handler.GetProfile)
}

// Create
// @Summary Create an employee
// @Description With a password the employee also gets a linked login.
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/employees [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".employee.Create")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, shared.GetPrincipal(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAll
// @Summary List employees
// @Tags Employee
// @Produce json
// @Security BearerAuth
// @Param name query string false "name contains"
// @Param specialization query string false "specialization"
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} gDto.Paginated[dto.EmployeeResponse]
// @Router /v1/employees [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".employee.GetAll")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	params.RestrictSort(model.FieldName, model.FieldJoinedAt, constant.FieldCreatedAt)

	filters := []any{}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: name, Table: model.TableName})
	}

	if specialization := r.URL.Query().Get(model.FieldSpecialization); specialization != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldSpecialization, Operator: gDto.FilterOperatorEq, Value: specialization, Table: model.TableName})
	}

	res, err := handler.service.GetAll(ctx, params, gDto.NewFilterGroup(filters...))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get
// @Summary Get an employee
// @Tags Employee
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".employee.Get")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update
// @Summary Update an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Employee"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id} [patch]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".employee.Update")
	defer scope.End()

	req := dto.UpdateEmployeeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, shared.GetPrincipal(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Delete
// @Summary Delete an employee
// @Tags Employee
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".employee.Delete")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}

// GetProfile
// @Summary Employee profile of the logged in employee
// @Tags Employee
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.EmployeeResponse
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/employee/profile [get]
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".employee.GetProfile")
	defer scope.End()

	res, err := handler.service.GetProfile(ctx, shared.GetPrincipal(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
