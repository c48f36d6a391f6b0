package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catering/permissions"
)

func TestFindPermissions(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/v1/employees","method":"GET","permissions":["admin"]},
		{"path":"/v1/menu/","method":"get","skip":true}
	]}`))
	require.NoError(t, err)

	tests := []struct {
		name      string
		pattern   string
		method    string
		wantRoles []string
		wantSkip  bool
	}{
		{name: "exact pattern", pattern: "/v1/employees", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "subrouter root", pattern: "/v1/employees/", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "entry written with a slash", pattern: "/v1/menu", method: http.MethodGet, wantSkip: true},
		{name: "other method", pattern: "/v1/employees", method: http.MethodPost},
		{name: "unlisted", pattern: "/v1/orders", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.pattern, tt.method)

			assert.Equal(t, tt.wantRoles, permission.Permissions)
			assert.Equal(t, tt.wantSkip, permission.Skip)
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	adminOnly := permissions.Permission{Permissions: []string{"admin"}}

	assert.True(t, adminOnly.Allows("admin"))
	assert.False(t, adminOnly.Allows("employee"))
	assert.True(t, permissions.Permission{}.Allows("user"))
}

func TestParse_RejectsDuplicates(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/v1/orders","method":"GET"},
		{"path":"/v1/orders/","method":"GET"}
	]}`))

	require.ErrorContains(t, err, "duplicate permission entry GET /v1/orders")
}

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.FindPermissions("/v1/menu/", http.MethodGet).Skip)
	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/reports/summary", http.MethodGet).Permissions)
}
