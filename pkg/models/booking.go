package models

// Booking is a snapshot of a confirmed offer plus confirmation metadata
type Booking struct {
	BookingID string      `json:"bookingId"`
	Offer     FlightOffer `json:"offer"`
	Passenger Passenger   `json:"passenger"`
	Seat      string      `json:"seat"`
	Extras    Extras      `json:"extras"`
	Total     int         `json:"total"`
	BookedAt  string      `json:"bookedAt"`
}

// Passenger holds the traveller details collected in the first checkout step
type Passenger struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Extras are the optional add-ons selected during checkout
type Extras struct {
	Baggage   bool `json:"baggage"`
	Insurance bool `json:"insurance"`
}

// User is the mock signed-in identity. Any credentials are accepted.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest carries mock sign-in credentials. The password is never checked.
type LoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Promotion is a static marketing offer
type Promotion struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Discount    string `json:"discount"`
}
