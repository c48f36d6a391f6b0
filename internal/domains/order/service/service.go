package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"catering/config"
	"catering/infras/otel"
	bookingModel "catering/internal/domains/booking/model"
	bookingRepo "catering/internal/domains/booking/repository"
	menuModel "catering/internal/domains/menu/model"
	menuRepo "catering/internal/domains/menu/repository"
	"catering/internal/domains/notification"
	"catering/internal/domains/order/model"
	"catering/internal/domains/order/model/dto"
	"catering/internal/domains/order/repository"
	"catering/shared"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	errOrderNotFound   = failure.NotFound("order not found")
	errBookingNotFound = failure.NotFound("booking not found")
	errForeignBooking  = failure.Forbidden("booking belongs to another user")
	errAdminOnly       = failure.Forbidden("only admins can update orders")
	errEmptyUpdate     = failure.BadRequestFromString("status or paymentStatus is required")
)

type Order interface {
	Create(ctx context.Context, principal gDto.Principal, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	List(ctx context.Context, principal gDto.Principal, params gDto.QueryParams) (gDto.Paginated[dto.OrderResponse], error)
	Get(ctx context.Context, principal gDto.Principal, id string) (dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, principal gDto.Principal, id string, req dto.UpdateOrderStatusRequest) (dto.OrderResponse, error)
}

type serviceImpl struct {
	repo        repository.Order
	menuRepo    menuRepo.Menu
	bookingRepo bookingRepo.Booking
	notifier    notification.Notifier
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Order,
	menuRepo menuRepo.Menu,
	bookingRepo bookingRepo.Booking,
	notifier notification.Notifier,
	cfg *config.Config,
	otel otel.Otel,
) Order {
	return &serviceImpl{
		repo:        repo,
		menuRepo:    menuRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, principal gDto.Principal, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.BookingID != nil {
		if err = s.checkBooking(ctx, principal, *req.BookingID); err != nil {
			return res, err
		}
	}

	items, err := s.menuRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(req.MenuIDs(), menuModel.FieldID, menuModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve order items")

		return res, fmt.Errorf("failed to resolve order items: %w", err)
	}

	order, err := req.ToModel(principal.ID, menuModel.ByID(items))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	log.Info().Str("order_id", order.ID).Float64("total", order.Total).Msg("order placed")

	res.FromModel(order)

	if err := s.notifier.Notify(ctx, s.cfg.Notification.AdminRoom, notification.EventOrderCreated, res); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to notify admins")
	}

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, principal gDto.Principal, params gDto.QueryParams) (res gDto.Paginated[dto.OrderResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	var filter gDto.FilterGroup
	if !principal.Is(role.Admin) {
		filter = repository.FilterByOwner(principal.ID)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, repository.Newest(params), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	return gDto.NewPaginated(dto.FromModels(orders), total, params.Limit), nil
}

func (s *serviceImpl) Get(ctx context.Context, principal gDto.Principal, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !principal.Is(role.Admin) && order.UserID != principal.ID {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, principal gDto.Principal, id string, req dto.UpdateOrderStatusRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Admin) {
		return res, errAdminOnly
	}

	if req.Empty() {
		return res, errEmptyUpdate
	}

	if _, err = s.get(ctx, id); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, principal.ID), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to update order")

		return res, fmt.Errorf("failed to update order: %w", err)
	}

	order, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Order, error) {
	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to get order")

		return order, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == "" {
		return order, errOrderNotFound
	}

	return order, nil
}

func (s *serviceImpl) checkBooking(ctx context.Context, principal gDto.Principal, bookingID string) error {
	booking, err := s.bookingRepo.Get(
		ctx,
		shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName),
		bookingModel.FieldID, bookingModel.FieldUserID,
	)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return errBookingNotFound
	}

	if !principal.Is(role.Admin) && booking.UserID != principal.ID {
		return errForeignBooking
	}

	return nil
}
