package shared_test

import (
	"catering/shared"
	"catering/shared/constant"
	"catering/shared/dto"
	"catering/shared/role"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "zero", input: "0", expected: boolPtr(false)},
		{name: "garbage", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

type updateMenuFields struct {
	Name      string   `db:"name"`
	Price     *float64 `db:"price"`
	Available *bool    `db:"available"`
	Ignored   string
}

func TestTransformFields(t *testing.T) {
	price := 120.5
	available := false

	fields := shared.TransformFields(updateMenuFields{
		Name:      "Samosa",
		Price:     &price,
		Available: &available,
		Ignored:   "not a column",
	}, "admin-1")

	assert.Equal(t, "Samosa", fields["name"])
	assert.Equal(t, 120.5, fields["price"])
	assert.Equal(t, false, fields["available"])
	assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "Ignored")
	assert.Len(t, fields, 5)
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	fields := shared.TransformFields(updateMenuFields{}, "admin-1")

	assert.Len(t, fields, 2)
}

func TestFilterByIDs(t *testing.T) {
	filter := shared.FilterByIDs([]string{"m1", "m2"}, "id", "menu_items")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(menu_items.id IN (:id_0, :id_1) )", where)
	assert.Equal(t, map[string]any{"id_0": "m1", "id_1": "m2"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "menu:get", shared.BuildCacheKey("menu:get"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	veg := dto.NewFilterGroup(dto.Filter{Field: "dietary", Value: "veg", Operator: dto.FilterOperatorEq})
	nonVeg := dto.NewFilterGroup(dto.Filter{Field: "dietary", Value: "non-veg", Operator: dto.FilterOperatorEq})

	first := shared.BuildCacheKeyWithQuery("menu:gets", params, veg)

	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("menu:gets", params, veg))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("menu:gets", params, nonVeg))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("menu:gets", dto.QueryParams{Page: 2, Limit: 10}, veg))
	assert.Contains(t, first, "menu:gets:")
}

func TestPrincipalRoundTrip(t *testing.T) {
	principal := dto.Principal{ID: "u-1", Email: "chef@example.com", Role: role.Employee}

	got := shared.GetPrincipal(shared.WithPrincipal(context.Background(), principal))

	assert.Equal(t, principal, got)
	assert.True(t, got.Is(role.Employee))
}

func TestGetPrincipal_UnknownRole(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, "superadmin")

	got := shared.GetPrincipal(ctx)

	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, role.Role(""), got.Role)
	assert.False(t, shared.GetPrincipal(context.Background()).Authenticated())
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505"}

	assert.True(t, shared.IsUniqueViolation(unique))
	assert.True(t, shared.IsUniqueViolation(fmt.Errorf("insert user: %w", unique)))
	assert.False(t, shared.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, shared.IsUniqueViolation(errors.New("boom")))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, shared.Unique([]string{"a", "b", "a", "", "c", "b"}))
	assert.Empty(t, shared.Unique(nil))
}
