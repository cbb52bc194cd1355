//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"meeting-rooms/internal/handler/dto/request"
	"meeting-rooms/internal/pkg/clock"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/pkg/jwt"
	"meeting-rooms/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(userID, username)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose exp lies an hour in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, past)
	token, err := service.GenerateToken(userID, username)
	require.NoError(t, err)
	return token
}

// LoginUser posts to /login and returns the issued token.
func LoginUser(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.Token, "login response carried no token")

	return body.Token
}
