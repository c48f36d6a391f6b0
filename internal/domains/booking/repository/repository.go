package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"catering/infras/otel"
	"catering/infras/postgres"
	"catering/internal/domains/booking/model"
	gDto "catering/shared/dto"
	gRepo "catering/shared/repository"
	"context"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// NewestFirst orders listings by creation time, ties broken by id.
func NewestFirst() gDto.QueryParams {
	return gDto.Sorted(model.TableName+"."+model.FieldCreatedAt+", "+model.TableName+"."+model.FieldID, gDto.SortDirDesc)
}

func FilterByOwner(userID string) gDto.FilterGroup {
	return gDto.NewFilterGroup(eq(model.FieldUserID, userID))
}

func FilterByAssignee(employeeID string) gDto.FilterGroup {
	return gDto.NewFilterGroup(eq(model.FieldAssignedEmployeeID, employeeID))
}

// FilterAssigned matches the booking only while it is still assigned to employeeID.
// The guard uses its own argument name so an UPDATE of the same column cannot shadow it.
func FilterAssigned(id, employeeID string) gDto.FilterGroup {
	guard := eq(model.FieldAssignedEmployeeID, employeeID)
	guard.ArgName = "expected_assignee"

	return gDto.NewFilterGroup(eq(model.FieldID, id), guard)
}

// FilterInStatus matches the booking only while it still has status.
func FilterInStatus(id string, status model.Status) gDto.FilterGroup {
	guard := eq(model.FieldStatus, status)
	guard.ArgName = "expected_status"

	return gDto.NewFilterGroup(eq(model.FieldID, id), guard)
}

func FilterCompletedBy(employeeID string) gDto.FilterGroup {
	return gDto.NewFilterGroup(eq(model.FieldAssignedEmployeeID, employeeID), eq(model.FieldStatus, model.StatusCompleted))
}

func FilterByStatus(status model.Status) gDto.FilterGroup {
	return gDto.NewFilterGroup(eq(model.FieldStatus, status))
}

func eq(field string, value any) gDto.Filter {
	return gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}
