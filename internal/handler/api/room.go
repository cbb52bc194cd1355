package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "meeting-rooms/internal/handler/dto/response"
	"meeting-rooms/internal/handler/httperr"
	"meeting-rooms/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{roomUseCase: roomUseCase}
}

// @Summary List rooms
// @Description All rooms ordered by location, then price
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomUseCase.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	resp, err := resdto.FromRooms(rooms)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// non-integer ids never name a room
		httperr.AbortWithError(c, http.StatusNotFound, err, msgRoomNotFound)
		return
	}

	r, err := h.roomUseCase.GetRoom(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgRoomNotFound)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	resp, err := resdto.FromRoom(r)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
