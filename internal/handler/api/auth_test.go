//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"meeting-rooms/internal/domain/user"
	"meeting-rooms/internal/handler/api"
	resdto "meeting-rooms/internal/handler/dto/response"
	"meeting-rooms/internal/usecase"
	"meeting-rooms/tests/common/builder"
	"meeting-rooms/tests/common/httptest"
	"meeting-rooms/tests/common/testutil"
	usecasemock "meeting-rooms/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)

	s.router.POST("/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func credentials(login, password string) user.Credentials {
	c, _ := user.NewCredentials(login, password)
	return c
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	john := builder.NewUserBuilder().BuildDomain()

	s.Run("success: returns token and identity", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), credentials(reqBody.Email, reqBody.Password)).
			Return(&usecase.LoginResult{Token: "signed-token", User: john}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.Token)
		s.Equal(int64(1), response.UserID)
		s.Equal("John Doe", response.Name)
		s.Equal("john@nexus.com", response.Email)
		s.Empty(response.Message)
	})

	s.Run("success: identity only carries a message", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&usecase.LoginResult{User: john}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Token)
		s.Equal("Login successful", response.Message)
	})

	s.Run("success: username is accepted as an alias", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), credentials("jane@nexus.com", "password123")).
			Return(&usecase.LoginResult{User: john}, nil).Times(1)

		body := map[string]any{"username": "jane@nexus.com", "password": "password123"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Missing fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "blank email", mutate: testutil.Field("email", "   ")},
			{name: "empty password", mutate: testutil.Field("password", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing fields")
			})
		}

		s.Run("malformed json", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"email":`, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing fields")
		})
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				useCaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid credentials",
			},
			{
				name:           "internal server error carries the raw message",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "database error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

var fixedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
