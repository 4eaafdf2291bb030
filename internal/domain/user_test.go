package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("a@x.com", "$2a$12$somehash")
		require.NoError(t, err)

		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "$2a$12$somehash", user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	tests := []struct {
		name    string
		email   string
		hash    string
		wantErr error
	}{
		{name: "empty email", email: "", hash: "h", wantErr: ErrEmptyEmail},
		{name: "missing at sign", email: "ax.com", hash: "h", wantErr: ErrInvalidEmail},
		{name: "missing domain dot", email: "a@xcom", hash: "h", wantErr: ErrInvalidEmail},
		{name: "trailing at sign", email: "a@", hash: "h", wantErr: ErrInvalidEmail},
		{name: "empty hash", email: "a@x.com", hash: "", wantErr: ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.email, tt.hash)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
		})
	}
}

func TestUserPublicProjection(t *testing.T) {
	t.Parallel()

	user, err := NewUser("a@x.com", "$2a$12$somehash")
	require.NoError(t, err)

	public := user.Public()
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, user.Email, public.Email)
	assert.Equal(t, user.CreatedAt, public.CreatedAt)
	assert.Equal(t, user.UpdatedAt, public.UpdatedAt)
}

func TestUserJSONNeverContainsHash(t *testing.T) {
	t.Parallel()

	user, err := NewUser("a@x.com", "$2a$12$supersecrethash")
	require.NoError(t, err)

	// Even the full entity marshals without the hash; the public
	// projection cannot carry it at all.
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "supersecrethash")

	rawPublic, err := json.Marshal(user.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(rawPublic), "supersecrethash")
}
