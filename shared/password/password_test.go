package password_test

import (
	"catering/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("catering-secret")
	require.NoError(t, err)

	assert.NotEqual(t, "catering-secret", hash)
	assert.NoError(t, password.Verify("catering-secret", hash))
	assert.ErrorIs(t, password.Verify("wrong-secret", hash), password.ErrInvalidPassword)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")

	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "empty password", password: "", hash: "$2a$10$abc", wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "secret", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, password.Verify(tt.password, tt.hash), tt.wantErr)
		})
	}

	assert.Error(t, password.Verify("secret", "not-a-bcrypt-hash"))
}
