package menu

import (
	"catering/infras/otel"
	"catering/internal/domains/menu/model"
	"catering/internal/domains/menu/model/dto"
	"catering/internal/domains/menu/service"
	"catering/shared"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/validator"
	"catering/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryTag = "tag"

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Get("/{id}", handler.Get)
		r.Post("/", handler.Create)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// GetAll
// @Summary List menu items
// @Tags Menu
// @Produce json
// @Param category query string false "category"
// @Param dietary query string false "veg or non-veg"
// @Param tag query string false "program or event type"
// @Param available query bool false "availability"
// @Param name query string false "name contains"
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Param sort_by query string false "name, price, category, created_at"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} gDto.Paginated[dto.MenuItemResponse]
// @Failure 500 {object} response.Error
// @Router /v1/menu [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".menu.GetAll")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	params.RestrictSort(model.FieldName, model.FieldPrice, model.FieldCategory, constant.FieldCreatedAt)

	query := r.URL.Query()
	filter := dto.Filter{
		Name:      query.Get(model.FieldName),
		Category:  query.Get(model.FieldCategory),
		Dietary:   query.Get(model.FieldDietary),
		Tag:       query.Get(queryTag),
		Available: shared.ConvertStringToBool(query.Get(model.FieldAvailable)),
	}

	res, err := handler.service.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get
// @Summary Get a menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} dto.MenuItemResponse
// @Failure 404 {object} response.Error
// @Router /v1/menu/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".menu.Get")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create
// @Summary Create a menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} dto.MenuItemResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/menu [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".menu.Create")
	defer scope.End()

	req := dto.CreateMenuItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, shared.GetPrincipal(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Update
// @Summary Update a menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body dto.UpdateMenuItemRequest true "Menu item"
// @Success 200 {object} dto.MenuItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/menu/{id} [patch]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".menu.Update")
	defer scope.End()

	req := dto.UpdateMenuItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, shared.GetPrincipal(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Delete
// @Summary Delete a menu item
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/menu/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".menu.Delete")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
