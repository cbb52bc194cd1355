package main

import (
	"meeting-rooms/cmd/bootstrap"
)

// @title           Auth Service
// @version         1.0
// @description     Login for the meeting-room frontend.
// @BasePath  /
// @schemes http https
func main() {
	bootstrap.Run(bootstrap.AuthApp)
}
