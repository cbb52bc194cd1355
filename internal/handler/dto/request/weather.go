package request

type WeatherQuery struct {
	Location string `form:"location"`
	Date     string `form:"date"`
}
