package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"catering/infras/otel"
	"catering/infras/postgres"
	"catering/internal/domains/activity/model"
	gDto "catering/shared/dto"
	gRepo "catering/shared/repository"
	"context"
)

type Activity interface {
	Insert(ctx context.Context, model model.BookingActivity) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingActivity, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingActivity]
}

func New(db *postgres.Connection, otel otel.Otel) Activity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingActivity](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func FilterByBooking(bookingID string) gDto.FilterGroup {
	return gDto.NewFilterGroup(gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
}

func OldestFirst() gDto.QueryParams {
	return gDto.Sorted(model.TableName+"."+model.FieldOccurredAt+", "+model.TableName+"."+model.FieldID, gDto.SortDirAsc)
}
