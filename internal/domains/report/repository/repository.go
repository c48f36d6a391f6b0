package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"catering/infras/otel"
	"catering/infras/postgres"
	"catering/internal/domains/report/model"
	"catering/shared/constant"
	"catering/shared/logger"
	"context"
	"fmt"
)

const (
	queryBookingsByStatus = `SELECT status, COUNT(id) AS total FROM bookings GROUP BY status`
	queryOrderTotals      = `SELECT COUNT(id) AS orders,
		COALESCE(SUM(total) FILTER (WHERE payment_status = 'paid'), 0) AS paid_revenue
		FROM orders`
	queryCatalog = `SELECT (SELECT COUNT(id) FROM menu_items) AS menu_items,
		(SELECT COUNT(id) FROM employees) AS employees`
)

// Report runs the read-only aggregates behind the admin dashboard.
type Report interface {
	BookingsByStatus(ctx context.Context) ([]model.StatusCount, error)
	OrderTotals(ctx context.Context) (model.OrderTotals, error)
	Catalog(ctx context.Context) (model.Catalog, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{db: db, otel: otel}
}

func (r *repositoryImpl) BookingsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.BookingsByStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryBookingsByStatus)

	counts := []model.StatusCount{}
	if err := r.db.Read.SelectContext(ctx, &counts, queryBookingsByStatus); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	return counts, nil
}

func (r *repositoryImpl) OrderTotals(ctx context.Context) (model.OrderTotals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.OrderTotals")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryOrderTotals)

	var totals model.OrderTotals
	if err := r.db.Read.GetContext(ctx, &totals, queryOrderTotals); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return totals, fmt.Errorf("failed to total orders: %w", err)
	}

	return totals, nil
}

func (r *repositoryImpl) Catalog(ctx context.Context) (model.Catalog, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Catalog")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCatalog)

	var catalog model.Catalog
	if err := r.db.Read.GetContext(ctx, &catalog, queryCatalog); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return catalog, fmt.Errorf("failed to count catalog: %w", err)
	}

	return catalog, nil
}
