package main

import (
	"meeting-rooms/cmd/bootstrap"
)

// @title           Room Service
// @version         1.0
// @description     Read-only meeting-room catalog.
// @BasePath  /
// @schemes http https
func main() {
	bootstrap.Run(bootstrap.RoomApp)
}
