package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"catering/config"
	"catering/infras/otel"
	"catering/internal/domains/booking/model"
	"catering/internal/domains/booking/model/dto"
	"catering/internal/domains/booking/repository"
	menuModel "catering/internal/domains/menu/model"
	menuRepo "catering/internal/domains/menu/repository"
	"catering/internal/domains/notification"
	userModel "catering/internal/domains/user/model"
	userRepo "catering/internal/domains/user/repository"
	"catering/shared"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/metrics"
	"catering/shared/role"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	actorOwner    = "owner"
	actorAdmin    = "admin"
	actorEmployee = "employee"
)

var (
	errBookingNotFound  = failure.NotFound("booking not found")
	errEmployeeNotFound = failure.NotFound("employee not found")
	errAdminOnly        = failure.Forbidden("only admins can manage bookings")
	errEmployeeOnly     = failure.Forbidden("only employees can access assigned events")
	errNotAssigned      = failure.Forbidden("booking is not assigned to you")
	errNotOwner         = failure.Forbidden("booking belongs to another user")
	errNotPending       = failure.BadRequestFromString("only pending bookings can be cancelled")
	errEmployeeRequired = failure.BadRequestFromString("employeeId is required")
	errUnauthenticated  = failure.Unauthorized("authentication required")
)

type Booking interface {
	Create(ctx context.Context, principal gDto.Principal, req dto.CreateBookingRequest) (dto.BookingMessageResponse, error)
	List(ctx context.Context, principal gDto.Principal) ([]dto.BookingResponse, error)
	ListAssignedToEmployee(ctx context.Context, principal gDto.Principal) ([]dto.BookingResponse, error)
	Get(ctx context.Context, principal gDto.Principal, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, principal gDto.Principal, id string, req dto.UpdateStatusRequest) (dto.BookingMessageResponse, error)
	UpdateEmployeeStatus(ctx context.Context, principal gDto.Principal, id string, req dto.EmployeeStatusRequest) (dto.BookingResponse, error)
	AssignEmployee(ctx context.Context, principal gDto.Principal, id string, req dto.AssignEmployeeRequest) (dto.BookingMessageResponse, error)
	Cancel(ctx context.Context, principal gDto.Principal, id string) (dto.BookingMessageResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	menuRepo menuRepo.Menu
	userRepo userRepo.User
	notifier notification.Notifier
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	menuRepo menuRepo.Menu,
	userRepo userRepo.User,
	notifier notification.Notifier,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		menuRepo: menuRepo,
		userRepo: userRepo,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, principal gDto.Principal, req dto.CreateBookingRequest) (res dto.BookingMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Authenticated() {
		return res, errUnauthenticated
	}

	booking, err := req.ToModel(principal.ID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	menu, err := s.resolveMenu(ctx, model.MenuIDs(booking))
	if err != nil {
		return res, err
	}

	for _, id := range booking.Menu {
		if _, ok := menu[id]; !ok {
			return res, failure.BadRequestFromString(fmt.Sprintf("menu item %s does not exist", id))
		}
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingTransitions.WithLabelValues(booking.Status.String(), actorOwner).Inc()
	log.Info().Str("booking_id", booking.ID).Str("user_id", principal.ID).Msg("booking requested")

	parties, err := s.resolveParties(ctx, model.PartyIDs(booking))
	if err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("booking created without owner details")
	}

	res.Message = dto.MessageCreated
	res.Booking.FromModel(booking, menu, parties)

	s.notify(ctx, notification.EventBookingRequested, res.Booking)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, principal gDto.Principal) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Authenticated() {
		return nil, errUnauthenticated
	}

	var filter gDto.FilterGroup

	switch principal.Role {
	case role.Admin:
		// unfiltered
	case role.Employee:
		filter = repository.FilterByAssignee(principal.ID)
	default:
		filter = repository.FilterByOwner(principal.ID)
	}

	return s.list(ctx, filter)
}

func (s *serviceImpl) ListAssignedToEmployee(ctx context.Context, principal gDto.Principal) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListAssignedToEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Employee) {
		return nil, errEmployeeOnly
	}

	return s.list(ctx, repository.FilterByAssignee(principal.ID))
}

func (s *serviceImpl) Get(ctx context.Context, principal gDto.Principal, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !principal.Is(role.Admin) && booking.UserID != principal.ID && !booking.AssignedTo(principal.ID) {
		return res, failure.ResourceRestrictedError
	}

	return s.present(ctx, booking)
}

// UpdateStatus lets an admin write any canonical status. Concurrent admin writes are last-write-wins.
func (s *serviceImpl) UpdateStatus(
	ctx context.Context,
	principal gDto.Principal,
	id string,
	req dto.UpdateStatusRequest,
) (res dto.BookingMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Admin) {
		return res, errAdminOnly
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		return res, failure.InvalidStatus(req.Status)
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(dto.StatusUpdate{Status: status}, principal.ID), filter); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status

	metrics.BookingTransitions.WithLabelValues(status.String(), actorAdmin).Inc()
	s.notify(ctx, notification.EventBookingUpdated, dto.StatusChangedEvent{ID: id, Status: status})

	res.Message = dto.MessageUpdated
	res.Booking, err = s.present(ctx, booking)

	return res, err
}

// UpdateEmployeeStatus applies an employee-facing status label to a booking assigned to the caller.
func (s *serviceImpl) UpdateEmployeeStatus(
	ctx context.Context,
	principal gDto.Principal,
	id string,
	req dto.EmployeeStatusRequest,
) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateEmployeeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Employee) {
		return res, errEmployeeOnly
	}

	status, err := model.ParseEmployeeStatus(req.Status)
	if err != nil {
		return res, failure.InvalidStatus(req.Status)
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.AssignedTo(principal.ID) {
		return res, errNotAssigned
	}

	updated, err := s.repo.UpdateCount(ctx, shared.TransformFields(dto.StatusUpdate{Status: status}, principal.ID), repository.FilterAssigned(id, principal.ID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	// Reassigned between the read and the write.
	if updated == 0 {
		return res, errNotAssigned
	}

	booking.Status = status

	metrics.BookingTransitions.WithLabelValues(status.String(), actorEmployee).Inc()
	s.notify(ctx, notification.EventBookingUpdated, dto.StatusChangedEvent{ID: id, Status: status, AssignedEmployee: &principal.ID})

	return s.present(ctx, booking)
}

// AssignEmployee binds an active employee account to the booking and confirms it in one write.
func (s *serviceImpl) AssignEmployee(
	ctx context.Context,
	principal gDto.Principal,
	id string,
	req dto.AssignEmployeeRequest,
) (res dto.BookingMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AssignEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Admin) {
		return res, errAdminOnly
	}

	if req.EmployeeID == "" {
		return res, errEmployeeRequired
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	employee, err := s.userRepo.Get(ctx, userRepo.FilterActiveEmployee(req.EmployeeID))
	if err != nil {
		log.Error().Err(err).Str("employee_id", req.EmployeeID).Msg("failed to resolve employee")

		return res, fmt.Errorf("failed to resolve employee: %w", err)
	}

	if employee.ID == "" {
		return res, errEmployeeNotFound
	}

	assignment := dto.Assignment{AssignedEmployeeID: employee.ID, Status: model.StatusConfirmed}

	if err = s.repo.Update(ctx, shared.TransformFields(assignment, principal.ID), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to assign employee")

		return res, fmt.Errorf("failed to assign employee: %w", err)
	}

	booking.AssignedEmployeeID = &employee.ID
	booking.Status = model.StatusConfirmed

	metrics.BookingTransitions.WithLabelValues(booking.Status.String(), actorAdmin).Inc()
	log.Info().Str("booking_id", id).Str("employee_id", employee.ID).Msg("employee assigned")

	s.notify(ctx, notification.EventBookingUpdated, dto.StatusChangedEvent{ID: id, Status: booking.Status, AssignedEmployee: &employee.ID})

	res.Message = dto.MessageAssigned
	res.Booking, err = s.present(ctx, booking)

	return res, err
}

// Cancel withdraws the caller's own booking while nobody has acted on it yet.
func (s *serviceImpl) Cancel(ctx context.Context, principal gDto.Principal, id string) (res dto.BookingMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.UserID != principal.ID {
		return res, errNotOwner
	}

	if booking.Status != model.StatusPending {
		return res, errNotPending
	}

	updated, err := s.repo.UpdateCount(
		ctx,
		shared.TransformFields(dto.StatusUpdate{Status: model.StatusCancelled}, principal.ID),
		repository.FilterInStatus(id, model.StatusPending),
	)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if updated == 0 {
		return res, errNotPending
	}

	booking.Status = model.StatusCancelled

	metrics.BookingTransitions.WithLabelValues(booking.Status.String(), actorOwner).Inc()
	s.notify(ctx, notification.EventBookingUpdated, dto.StatusChangedEvent{ID: id, Status: booking.Status})

	res.Message = dto.MessageCancelled
	res.Booking, err = s.present(ctx, booking)

	return res, err
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, errBookingNotFound
	}

	return booking, nil
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.BookingResponse, error) {
	bookings, err := s.repo.GetAll(ctx, repository.NewestFirst(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	menu, err := s.resolveMenu(ctx, model.MenuIDs(bookings...))
	if err != nil {
		return nil, err
	}

	parties, err := s.resolveParties(ctx, model.PartyIDs(bookings...))
	if err != nil {
		return nil, err
	}

	return dto.FromModels(bookings, menu, parties), nil
}

func (s *serviceImpl) present(ctx context.Context, booking model.Booking) (res dto.BookingResponse, err error) {
	menu, err := s.resolveMenu(ctx, model.MenuIDs(booking))
	if err != nil {
		return res, err
	}

	parties, err := s.resolveParties(ctx, model.PartyIDs(booking))
	if err != nil {
		return res, err
	}

	res.FromModel(booking, menu, parties)

	return res, nil
}

func (s *serviceImpl) resolveMenu(ctx context.Context, ids []string) (map[string]menuModel.MenuItem, error) {
	if len(ids) == 0 {
		return map[string]menuModel.MenuItem{}, nil
	}

	items, err := s.menuRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(ids, menuModel.FieldID, menuModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve booking menu")

		return nil, fmt.Errorf("failed to resolve booking menu: %w", err)
	}

	return menuModel.ByID(items), nil
}

func (s *serviceImpl) resolveParties(ctx context.Context, ids []string) (map[string]userModel.User, error) {
	if len(ids) == 0 {
		return map[string]userModel.User{}, nil
	}

	users, err := s.userRepo.GetAll(
		ctx,
		gDto.QueryParams{},
		shared.FilterByIDs(ids, userModel.FieldID, userModel.TableName),
		userModel.FieldID, userModel.FieldName, userModel.FieldEmail, userModel.FieldPhone,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve booking parties")

		return nil, fmt.Errorf("failed to resolve booking parties: %w", err)
	}

	return userModel.ByID(users), nil
}

func (s *serviceImpl) notify(ctx context.Context, event string, payload any) {
	if err := s.notifier.Notify(ctx, s.cfg.Notification.AdminRoom, event, payload); err != nil {
		log.Warn().Err(err).Str("event", event).Msg("failed to notify admins")
	}
}
