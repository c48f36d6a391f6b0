package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"catering/infras/otel"
	"catering/internal/domains/report/model"
	"catering/internal/domains/report/model/dto"
	"catering/internal/domains/report/repository"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var errAdminOnly = failure.Forbidden("only admins can view reports")

type Report interface {
	Summary(ctx context.Context, principal gDto.Principal) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo repository.Report
	otel otel.Otel
}

func New(repo repository.Report, otel otel.Otel) Report {
	return &serviceImpl{repo: repo, otel: otel}
}

func (s *serviceImpl) Summary(ctx context.Context, principal gDto.Principal) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !principal.Is(role.Admin) {
		return res, errAdminOnly
	}

	var (
		counts  []model.StatusCount
		totals  model.OrderTotals
		catalog model.Catalog
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		counts, err = s.repo.BookingsByStatus(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		totals, err = s.repo.OrderTotals(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		catalog, err = s.repo.Catalog(groupCtx)

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to build report summary")

		return res, fmt.Errorf("failed to build report summary: %w", err)
	}

	return dto.NewSummary(counts, totals, catalog), nil
}
