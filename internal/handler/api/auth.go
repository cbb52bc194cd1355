package api

import (
	"errors"
	"net/http"

	reqdto "meeting-rooms/internal/handler/dto/request"
	resdto "meeting-rooms/internal/handler/dto/response"
	"meeting-rooms/internal/handler/httperr"
	"meeting-rooms/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary User login
// @Description Check email (or username) and password. Returns a bearer token when token issuing is enabled.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingFields)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingFields)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials")
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}
