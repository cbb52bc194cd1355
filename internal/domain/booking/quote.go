package booking

// RoomSnapshot is what the room catalog tells us about a room at booking time.
type RoomSnapshot struct {
	ID           int64
	Name         string
	Location     string
	PricePerHour Money
}

type Quote struct {
	Room        RoomSnapshot
	Date        Date
	Temperature float64
	Surcharge   Surcharge
	Total       Money
}

func NewQuote(room RoomSnapshot, date Date, temperature float64, calc SurchargeCalculator) Quote {
	surcharge := calc.Calculate(room.PricePerHour, temperature)
	return Quote{
		Room:        room,
		Date:        date,
		Temperature: temperature,
		Surcharge:   surcharge,
		Total:       room.PricePerHour.Add(surcharge.Amount),
	}
}

func (q Quote) BasePrice() Money {
	return q.Room.PricePerHour
}
