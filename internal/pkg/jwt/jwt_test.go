//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"meeting-rooms/internal/pkg/clock"
	"meeting-rooms/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	issuedAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(issuedAt)
	svc := jwt.NewService("test-secret", time.Hour, clk)

	token, err := svc.GenerateToken(7, "John Doe")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("success: claims round trip", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)

		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "John Doe", claims.Username)
		assert.Equal(t, issuedAt.Add(time.Hour), claims.ExpiresAt.Time.UTC())
	})

	t.Run("error: expired one hour later", func(t *testing.T) {
		clk.Set(issuedAt.Add(time.Hour + time.Second))
		defer clk.Set(issuedAt)

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: different secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour, clk)

		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestService_MissingSecret(t *testing.T) {
	svc := jwt.NewService("", time.Hour, nil)

	_, err := svc.GenerateToken(1, "x")
	assert.ErrorIs(t, err, jwt.ErrMissingKey)
}
