package response

import (
	"meeting-rooms/internal/domain/room"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Capacity     int32   `json:"capacity"`
	Location     string  `json:"location"`
	PricePerHour float64 `json:"price_per_hour"`
}

func FromRoom(r *room.Room) (RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, r); err != nil {
		return RoomResponse{}, err
	}
	return resp, nil
}

// FromRooms never returns nil so an empty catalog encodes as [].
func FromRooms(rooms []room.Room) ([]RoomResponse, error) {
	resp := make([]RoomResponse, 0, len(rooms))
	if len(rooms) == 0 {
		return resp, nil
	}
	if err := copier.Copy(&resp, &rooms); err != nil {
		return nil, err
	}
	return resp, nil
}
