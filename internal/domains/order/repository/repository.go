package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"catering/infras/otel"
	"catering/infras/postgres"
	"catering/internal/domains/order/model"
	gDto "catering/shared/dto"
	gRepo "catering/shared/repository"
	"context"
)

type Order interface {
	Insert(ctx context.Context, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func FilterByOwner(userID string) gDto.FilterGroup {
	return gDto.NewFilterGroup(gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
}

// Newest returns params ordered newest first, keeping the caller's paging.
func Newest(params gDto.QueryParams) gDto.QueryParams {
	params.SortBy = model.TableName + "." + model.FieldCreatedAt + ", " + model.TableName + "." + model.FieldID
	params.SortDir = gDto.SortDirDesc

	return params
}
