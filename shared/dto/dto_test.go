package dto_test

import (
	"catering/shared/constant"
	"catering/shared/dto"
	"catering/shared/model"
	"catering/shared/role"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "admin-1",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)

	raw, err := json.Marshal(metadata)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "createdAt")
	assert.Contains(t, decoded, "modifiedAt")
	assert.Equal(t, "admin-1", decoded["createdBy"])
	assert.NotContains(t, decoded, "modifiedBy")
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=event_date&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "event_date", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back",
			query:          "page=-1&limit=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/menu?"+tt.query, nil)

			params := &dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *params)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name     string
		input    dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:     "allowed column keeps direction",
			input:    dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
			expected: dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:     "allowed column gets default direction",
			input:    dto.QueryParams{SortBy: "name"},
			expected: dto.QueryParams{SortBy: "name", SortDir: constant.DefaultValueSortDir},
		},
		{
			name:     "unknown column replaced",
			input:    dto.QueryParams{SortBy: "name; DROP TABLE users", SortDir: dto.SortDirAsc},
			expected: dto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
		{
			name:     "empty column replaced",
			input:    dto.QueryParams{},
			expected: dto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.input
			params.RestrictSort("name", "price")

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		where    string
		args     map[string]any
	}{
		{
			name:   "eq with table",
			filter: dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			where:  "bookings.status = :status",
			args:   map[string]any{"status": "pending"},
		},
		{
			name:   "custom arg name",
			filter: dto.Filter{ArgName: "assignee", Field: "assigned_employee_id", Value: "u-2", Operator: dto.FilterOperatorEq},
			where:  "assigned_employee_id = :assignee",
			args:   map[string]any{"assignee": "u-2"},
		},
		{
			name:   "in list",
			filter: dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			where:  "id IN (:id_0, :id_1) ",
			args:   map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:   "empty in list matches nothing",
			filter: dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			where:  "FALSE",
			args:   map[string]any{},
		},
		{
			name:   "any over array column",
			filter: dto.Filter{Field: "menu", Value: "m-1", Operator: dto.FilterOperatorAny},
			where:  ":menu = ANY(menu)",
			args:   map[string]any{"menu": "m-1"},
		},
		{
			name:   "is null",
			filter: dto.Filter{Field: "assigned_employee_id", Operator: dto.FilterIsNull},
			where:  "assigned_employee_id IS NULL",
			args:   map[string]any{},
		},
		{
			name:   "unknown operator",
			filter: dto.Filter{Field: "id", Operator: "between"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.NewFilterGroup(
		dto.Filter{Field: "role", Value: role.Employee.String(), Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "id", Operator: "between"},
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "id", Value: "u-1", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "employee_profile_id", Value: "u-1", ArgName: "profile", Operator: dto.FilterOperatorEq},
			},
		},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(role = :role AND (id = :id OR employee_profile_id = :profile))", where)
	assert.Equal(t, map[string]any{"role": "employee", "id": "u-1", "profile": "u-1"}, args)

	empty := dto.NewFilterGroup()
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}

func TestNewPaginated(t *testing.T) {
	page := dto.NewPaginated([]string{"a", "b"}, 21, 10)

	assert.Equal(t, 3, page.TotalPage)
	assert.Equal(t, 21, page.TotalData)

	empty := dto.NewPaginated[string](nil, 0, 10)

	assert.NotNil(t, empty.Items)
	assert.Equal(t, 1, empty.TotalPage)
}

func TestPrincipal(t *testing.T) {
	admin := dto.Principal{ID: "u-1", Role: role.Admin}

	assert.True(t, admin.Authenticated())
	assert.True(t, admin.Is(role.Admin))
	assert.False(t, admin.Is(role.Employee))
	assert.False(t, dto.Principal{}.Authenticated())
}
