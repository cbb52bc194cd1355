package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"meeting-rooms/internal/domain/booking"
	"meeting-rooms/internal/pkg/errs"
)

// RoomClient reads rooms from the room service.
type RoomClient struct {
	baseURL string
	http    *http.Client
}

func NewRoomClient(baseURL string, httpClient *http.Client) *RoomClient {
	return &RoomClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type roomPayload struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	PricePerHour *float64 `json:"price_per_hour"`
	Price        *float64 `json:"price"`
}

// GetRoom treats every non-200 answer as an unknown room. Transport failures
// are returned as-is.
func (c *RoomClient) GetRoom(ctx context.Context, id int64) (booking.RoomSnapshot, error) {
	url := fmt.Sprintf("%s/rooms/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return booking.RoomSnapshot{}, errs.Wrap(err, "failed to build room request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return booking.RoomSnapshot{}, errs.Mark(errs.Wrap(err, "room service request failed"), errs.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return booking.RoomSnapshot{}, errs.ErrRoomNotFound
	}

	var p roomPayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return booking.RoomSnapshot{}, errs.Wrap(err, "failed to decode room response")
	}

	price := p.PricePerHour
	if price == nil {
		price = p.Price
	}
	if price == nil {
		return booking.RoomSnapshot{}, errs.Newf("room %d has no price", id)
	}
	money, err := booking.NewMoneyFromAmount(*price)
	if err != nil {
		return booking.RoomSnapshot{}, errs.Wrapf(err, "room %d has an invalid price", id)
	}

	if p.ID == 0 {
		p.ID = id
	}
	return booking.RoomSnapshot{
		ID:           p.ID,
		Name:         p.Name,
		Location:     p.Location,
		PricePerHour: money,
	}, nil
}
