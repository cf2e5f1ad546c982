package password_test

import (
	"ohanna/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "valid secret", secret: "validPassword123"},
		{name: "special characters", secret: "P@ssw0rd!#$%^&*()"},
		{name: "unicode", secret: "contraseña123"},
		{name: "empty", secret: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than 72 bytes", secret: strings.Repeat("a", 100), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.secret)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NoError(t, password.Verify(tt.secret, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("testPassword123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		hash    string
		wantErr error
	}{
		{name: "match", secret: "testPassword123", hash: hash},
		{name: "wrong secret", secret: "wrongPassword", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty secret", secret: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", secret: "testPassword123", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", secret: "testPassword123", hash: "invalid_hash", wantErr: password.ErrVerifyingPassword},
		{name: "truncated hash", secret: "testPassword123", hash: hash[:10], wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.secret, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("same")
	require.NoError(t, err)

	second, err := password.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("same", first))
	assert.NoError(t, password.Verify("same", second))
}
