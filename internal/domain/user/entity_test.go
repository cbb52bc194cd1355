//go:build unit

package user_test

import (
	"testing"

	"meeting-rooms/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	e, err := user.NewEmail("  John@Nexus.com ")
	require.NoError(t, err)
	assert.Equal(t, "john@nexus.com", e.Value())

	for _, bad := range []string{"", "john", "john@", "@nexus.com", "john@nexus"} {
		_, err := user.NewEmail(bad)
		assert.ErrorIs(t, err, user.ErrInvalidEmail, bad)
	}
}

func TestNewCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		login    string
		password string
		want     string
		errIs    error
	}{
		{name: "email is normalised", login: " Jane@Nexus.com", password: "password123", want: "jane@nexus.com"},
		{name: "bare username accepted", login: "admin", password: "admin", want: "admin"},
		{name: "missing login", login: "  ", password: "x", errIs: user.ErrMissingLogin},
		{name: "missing password", login: "admin", password: "", errIs: user.ErrMissingPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := user.NewCredentials(tc.login, tc.password)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Login())
			assert.Equal(t, tc.password, c.Password())
		})
	}
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("john@nexus.com")
	require.NoError(t, err)

	u, err := user.NewUser(" John Doe ", email, "hash")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name())
	assert.Equal(t, "john@nexus.com", u.Email().Value())
	assert.Equal(t, int64(0), u.ID())

	_, err = user.NewUser("", email, "hash")
	assert.ErrorIs(t, err, user.ErrInvalidName)

	_, err = user.NewUser("John", email, "")
	assert.ErrorIs(t, err, user.ErrMissingPassword)
}
