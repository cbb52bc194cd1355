//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"meeting-rooms/internal/handler/middleware"
	"meeting-rooms/internal/pkg/jwt"
	"meeting-rooms/tests/common/httptest"
	usecasemock "meeting-rooms/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		r := gin.New()
		r.Use(middleware.NewAuthMiddleware(validator).RequireAuth())
		r.GET("/me", func(c *gin.Context) {
			id, ok := middleware.GetUserID(c)
			c.JSON(http.StatusOK, gin.H{"user_id": id, "ok": ok, "username": c.GetString("username")})
		})
		return r, validator
	}

	t.Run("valid token sets the user", func(t *testing.T) {
		r, validator := setup(t)
		validator.EXPECT().ValidateToken("good").Return(int64(7), "alice", nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "good")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":7,"ok":true,"username":"alice"}`, rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		r, _ := setup(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		r, _ := setup(t)

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/me", nil, "",
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		r, validator := setup(t)
		validator.EXPECT().ValidateToken("stale").Return(int64(0), "", jwt.ErrExpiredToken)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "stale")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestGetUserID_WithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(nil)
	_, ok := middleware.GetUserID(c)
	assert.False(t, ok)
}
