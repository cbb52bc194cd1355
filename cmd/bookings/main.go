package main

import (
	"meeting-rooms/cmd/bootstrap"
)

// @title           Booking Service
// @version         1.0
// @description     Weather-priced meeting-room bookings.
// @BasePath  /
// @schemes http https
func main() {
	bootstrap.Run(bootstrap.BookingApp)
}
