package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "meeting-rooms/internal/handler/dto/request"
	resdto "meeting-rooms/internal/handler/dto/response"
	"meeting-rooms/internal/handler/httperr"
	"meeting-rooms/internal/handler/middleware"
	"meeting-rooms/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create or preview a booking
// @Description Prices a room for a date using the forecast temperature. With preview=true nothing is stored.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.QuoteResponse "preview"
// @Success 201 {object} resdto.CreatedBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	params := req.ToParams()
	if !h.authorize(c, params.UserID) {
		return
	}

	result, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgMissingFields)
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrPastDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgRoomNotFound)
		case errors.Is(err, usecase.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, msgBookingConflict)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	if result.Preview {
		c.JSON(http.StatusOK, resdto.FromQuote(result.Quote, params.RoomName, true))
		return
	}
	c.JSON(http.StatusCreated, resdto.NewCreatedBookingResponse(result.BookingID, result.Quote, params.RoomName))
}

// @Summary List a user's bookings
// @Description Newest date first
// @Tags bookings
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/user/{id} [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidUserID)
		return
	}
	if !h.authorize(c, userID) {
		return
	}

	bookings, err := h.bookingUseCase.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Cancel a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.CancelledBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBookingID)
		return
	}

	// zero when no auth middleware runs; ownership is then not checked
	requesterID, _ := middleware.GetUserID(c)

	deleted, err := h.bookingUseCase.DeleteBooking(c.Request.Context(), id, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, msgForbidden)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewCancelledBookingResponse(deleted.ID()))
}

// authorize rejects requests whose token names another user. Without the auth
// middleware in front there is no token user and every request passes.
func (h *BookingHandler) authorize(c *gin.Context, userID int64) bool {
	tokenUser, ok := middleware.GetUserID(c)
	if !ok || userID == 0 || tokenUser == userID {
		return true
	}
	httperr.AbortWithError(c, http.StatusForbidden, usecase.ErrForbidden, msgForbidden)
	return false
}
