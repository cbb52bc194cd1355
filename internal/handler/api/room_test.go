//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/handler/api"
	resdto "meeting-rooms/internal/handler/dto/response"
	"meeting-rooms/internal/usecase"
	"meeting-rooms/tests/common/httptest"
	usecasemock "meeting-rooms/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRoomRouter(t *testing.T) (*gin.Engine, *usecasemock.MockRoomUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := usecasemock.NewMockRoomUseCase(ctrl)
	h := api.NewRoomHandler(uc)

	r := gin.New()
	r.GET("/rooms", h.ListRooms)
	r.GET("/rooms/:id", h.GetRoom)
	return r, uc
}

func TestRoomHandler_ListRooms(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := setupRoomRouter(t)
		uc.EXPECT().ListRooms(gomock.Any()).Return([]room.Room{
			{ID: 1, Name: "Mitte Room", Capacity: 50, Location: "Berlin", PricePerHour: 100},
			{ID: 5, Name: "Louvre Room", Capacity: 50, Location: "Paris", PricePerHour: 200},
		}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")

		var got []resdto.RoomResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		require.Len(t, got, 2)
		assert.Equal(t, resdto.RoomResponse{ID: 5, Name: "Louvre Room", Capacity: 50, Location: "Paris", PricePerHour: 200}, got[1])
	})

	t.Run("empty catalog is an empty array", func(t *testing.T) {
		r, uc := setupRoomRouter(t)
		uc.EXPECT().ListRooms(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := setupRoomRouter(t)
		uc.EXPECT().ListRooms(gomock.Any()).Return(nil, errors.New("connection refused"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "connection refused")
	})
}

func TestRoomHandler_GetRoom(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := setupRoomRouter(t)
		uc.EXPECT().GetRoom(gomock.Any(), int64(5)).
			Return(&room.Room{ID: 5, Name: "Louvre Room", Capacity: 50, Location: "Paris", PricePerHour: 200}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms/5", nil, "")

		var got resdto.RoomResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, "Louvre Room", got.Name)
		assert.Equal(t, 200.0, got.PricePerHour)
	})

	t.Run("unknown room", func(t *testing.T) {
		r, uc := setupRoomRouter(t)
		uc.EXPECT().GetRoom(gomock.Any(), int64(99)).Return(nil, usecase.ErrRoomNotFound)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms/99", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Room not found")
	})

	t.Run("non-integer id is not found", func(t *testing.T) {
		r, _ := setupRoomRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms/abc", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Room not found")
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := setupRoomRouter(t)
		uc.EXPECT().GetRoom(gomock.Any(), int64(1)).Return(nil, errors.New("timeout"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/rooms/1", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "timeout")
	})
}
