package models

// FlightOffer represents one bookable synthetic itinerary generated for a search
type FlightOffer struct {
	ID            string       `json:"id"`
	FlightNumber  string       `json:"flightNumber"`
	Airline       string       `json:"airline"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime string       `json:"departureTime"`
	ArrivalTime   string       `json:"arrivalTime"`
	Duration      string       `json:"duration"`
	Stops         StopCategory `json:"stops"`
	Price         int          `json:"price"`
	Currency      Currency     `json:"priceCurrency"`
	Class         CabinClass   `json:"class"`
	PointsEarned  int          `json:"pointsEarned"`
	Weather       Weather      `json:"weather"`
	Date          string       `json:"date"`
}

// Weather is a decorative snapshot attached to each offer
type Weather struct {
	Temp      int              `json:"temp"`
	Condition WeatherCondition `json:"condition"`
}

type CabinClass string

const (
	CabinClassEconomy  CabinClass = "Economy"
	CabinClassBusiness CabinClass = "Business"
	CabinClassFirst    CabinClass = "First"
)

type StopCategory string

const (
	StopsNonStop  StopCategory = "Non-stop"
	StopsOneStop  StopCategory = "1 Stop"
	StopsTwoStops StopCategory = "2 Stops"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "Sunny"
	WeatherCloudy WeatherCondition = "Cloudy"
	WeatherRainy  WeatherCondition = "Rainy"
	WeatherClear  WeatherCondition = "Clear"
)

// Seat represents one position in an offer's cabin layout
type Seat struct {
	ID       string `json:"id"` // e.g. "3C"
	Row      int    `json:"row"`
	Column   string `json:"column"`
	Occupied bool   `json:"occupied"`
}

// SearchRequest carries the user's search parameters.
// Passengers is accepted but not used downstream.
type SearchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Passengers  int    `json:"passengers"`
}
