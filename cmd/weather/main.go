package main

import (
	"meeting-rooms/cmd/bootstrap"
)

// @title           Weather Service
// @version         1.0
// @description     Per-city daily forecasts.
// @BasePath  /
// @schemes http https
func main() {
	bootstrap.Run(bootstrap.WeatherApp)
}
