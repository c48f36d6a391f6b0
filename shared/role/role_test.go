package role_test

import (
	"catering/shared/role"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    role.Role
		wantErr bool
	}{
		{name: "user", input: "user", want: role.User},
		{name: "admin upper case", input: "ADMIN", want: role.Admin},
		{name: "corporate with spaces", input: "  corporate ", want: role.Corporate},
		{name: "employee", input: "employee", want: role.Employee},
		{name: "superadmin is not a role", input: "superadmin", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := role.Parse(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, role.ErrUnknownRole)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range role.All() {
		assert.True(t, r.Valid(), r.String())
	}

	assert.False(t, role.Role("guest").Valid())
}
