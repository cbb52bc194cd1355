package request

import (
	"strings"

	"meeting-rooms/internal/usecase"
)

type CreateBookingRequest struct {
	UserID   FlexibleID `json:"user_id"`
	RoomID   FlexibleID `json:"room_id"`
	RoomName string     `json:"room_name"`
	Date     string     `json:"date"`
	Preview  bool       `json:"preview"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		UserID:   r.UserID.Int64(),
		RoomID:   r.RoomID.Int64(),
		RoomName: strings.TrimSpace(r.RoomName),
		Date:     strings.TrimSpace(r.Date),
		Preview:  r.Preview,
	}
}
