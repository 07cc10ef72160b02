package messaging

const (
	ExchangeName     = "dashboard"
	CitiesRoutingKey = "cities"
)
