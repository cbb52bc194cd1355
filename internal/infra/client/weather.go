package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"meeting-rooms/internal/domain/booking"
	"meeting-rooms/internal/pkg/errs"
)

// WeatherClient reads forecasts from the weather service.
type WeatherClient struct {
	baseURL string
	http    *http.Client
}

func NewWeatherClient(baseURL string, httpClient *http.Client) *WeatherClient {
	return &WeatherClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type weatherPayload struct {
	Temperature *float64 `json:"temperature"`
}

func (c *WeatherClient) Temperature(ctx context.Context, location string, date booking.Date) (float64, error) {
	q := url.Values{}
	q.Set("location", location)
	q.Set("date", date.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return 0, errs.Wrap(err, "failed to build weather request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "weather service request failed"), errs.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errs.Mark(errs.Newf("weather service returned %d", resp.StatusCode), errs.ErrUpstreamUnavailable)
	}

	var p weatherPayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return 0, errs.Wrap(err, "failed to decode weather response")
	}
	if p.Temperature == nil {
		return 0, errs.New("weather response has no temperature")
	}
	return *p.Temperature, nil
}
