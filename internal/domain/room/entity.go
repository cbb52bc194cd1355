package room

import "errors"

var ErrInvalidID = errors.New("room id must be positive")

// Room is reference data seeded at provisioning time and read-only afterwards.
type Room struct {
	ID           int64
	Name         string
	Capacity     int32
	Location     string
	PricePerHour float64
}

func ValidateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}

// Seed is the catalog created by the provisioning command, three cities with two rooms each.
var Seed = []Room{
	{Name: "Mitte Room", Capacity: 50, Location: "Berlin", PricePerHour: 100.00},
	{Name: "Alexanderplatz Hall", Capacity: 75, Location: "Berlin", PricePerHour: 150.00},
	{Name: "Westminster Suite", Capacity: 50, Location: "London", PricePerHour: 150.00},
	{Name: "Piccadilly Hall", Capacity: 75, Location: "London", PricePerHour: 225.00},
	{Name: "Louvre Room", Capacity: 50, Location: "Paris", PricePerHour: 200.00},
	{Name: "Versailles Hall", Capacity: 75, Location: "Paris", PricePerHour: 300.00},
}
