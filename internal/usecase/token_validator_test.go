//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"meeting-rooms/internal/pkg/clock"
	"meeting-rooms/internal/pkg/jwt"
	"meeting-rooms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	svc := jwt.NewService("test-secret", time.Hour, clk)
	v := usecase.NewTokenValidator(svc)

	token, err := svc.GenerateToken(7, "alice")
	require.NoError(t, err)

	userID, username, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "alice", username)

	_, _, err = v.ValidateToken("not-a-token")
	assert.Error(t, err)

	anonymous, err := svc.GenerateToken(0, "nobody")
	require.NoError(t, err)
	_, _, err = v.ValidateToken(anonymous)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
