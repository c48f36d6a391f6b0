package repository

import (
	"catering/shared/dto"
	"catering/shared/model"
	"reflect"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type bookingRow struct {
	ID         string         `db:"id"`
	Menu       pq.StringArray `db:"menu"`
	ClientName string         `db:"client_name"`
	OwnerName  string         `db:"owner_name" table:"users" column:"name"`
	model.Metadata
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("bookings", reflect.TypeOf(bookingRow{}))

	assert.Equal(t, []string{"id", "menu", "client_name", "created_at", "modified_at", "created_by", "modified_by"}, insertColumns)
	assert.Contains(t, columns, column{name: "name", table: "users", alias: "owner_name"})
	assert.Contains(t, columns, column{name: "menu", table: "bookings"})
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{
			name:     "no sort",
			params:   dto.QueryParams{},
			expected: "",
		},
		{
			name:     "single column",
			params:   dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc},
			expected: "ORDER BY created_at DESC",
		},
		{
			name:     "tie breaker",
			params:   dto.Sorted("event_date, id", dto.SortDirAsc),
			expected: "ORDER BY event_date ASC, id ASC",
		},
		{
			name:     "default direction",
			params:   dto.QueryParams{SortBy: "name"},
			expected: "ORDER BY name ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, orderClause(tt.params))
		})
	}
}
