package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"catering/infras/otel"
	bookingModel "catering/internal/domains/booking/model"
	bookingRepo "catering/internal/domains/booking/repository"
	menuModel "catering/internal/domains/menu/model"
	menuRepo "catering/internal/domains/menu/repository"
	"catering/internal/domains/payroll/model/dto"
	"catering/shared"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

var errEmployeeOnly = failure.Forbidden("only employees have a payroll")

type Payroll interface {
	ComputeForEmployee(ctx context.Context, principal gDto.Principal) (dto.PayrollResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	menuRepo    menuRepo.Menu
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, menuRepo menuRepo.Menu, otel otel.Otel) Payroll {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		menuRepo:    menuRepo,
		otel:        otel,
	}
}

// ComputeForEmployee recomputes earnings from the caller's completed bookings on every call.
// Nothing is cached or written.
func (s *serviceImpl) ComputeForEmployee(ctx context.Context, principal gDto.Principal) (res dto.PayrollResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payroll.ComputeForEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Employee) {
		return res, errEmployeeOnly
	}

	order := gDto.Sorted(bookingModel.FieldEventDate+", "+bookingModel.FieldID, gDto.SortDirAsc)

	bookings, err := s.bookingRepo.GetAll(ctx, order, bookingRepo.FilterCompletedBy(principal.ID))
	if err != nil {
		log.Error().Err(err).Str("employee_id", principal.ID).Msg("failed to get completed bookings")

		return res, fmt.Errorf("failed to get completed bookings: %w", err)
	}

	prices := map[string]float64{}

	if ids := bookingModel.MenuIDs(bookings...); len(ids) > 0 {
		items, err := s.menuRepo.GetAll(
			ctx,
			gDto.QueryParams{},
			shared.FilterByIDs(ids, menuModel.FieldID, menuModel.TableName),
			menuModel.FieldID, menuModel.FieldPrice,
		)
		if err != nil {
			log.Error().Err(err).Str("employee_id", principal.ID).Msg("failed to get menu prices")

			return res, fmt.Errorf("failed to get menu prices: %w", err)
		}

		prices = menuModel.PriceIndex(items)
	}

	return dto.Compute(bookings, prices), nil
}
