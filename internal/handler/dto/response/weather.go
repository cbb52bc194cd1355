package response

import "meeting-rooms/internal/domain/weather"

type WeatherResponse struct {
	Location    string `json:"location"`
	LocationID  string `json:"location_id"`
	Date        string `json:"date"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Source      string `json:"source"`
}

func FromForecast(f weather.Forecast) WeatherResponse {
	return WeatherResponse{
		Location:    f.DisplayName,
		LocationID:  f.LocationID,
		Date:        f.Date,
		Temperature: f.Temperature,
		Condition:   f.Condition,
		Source:      string(f.Source),
	}
}
