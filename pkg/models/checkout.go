package models

// CheckoutStep is one state of the linear booking wizard
type CheckoutStep string

const (
	StepPassengerInfo CheckoutStep = "passenger_info"
	StepExtras        CheckoutStep = "extras"
	StepSeatSelection CheckoutStep = "seat_selection"
	StepPayment       CheckoutStep = "payment"
	StepConfirmation  CheckoutStep = "confirmation"
)

// CheckoutStatus is the lifecycle state of a checkout session
type CheckoutStatus string

const (
	CheckoutStatusInProgress CheckoutStatus = "in_progress"
	CheckoutStatusProcessing CheckoutStatus = "processing"
	CheckoutStatusConfirmed  CheckoutStatus = "confirmed"
	CheckoutStatusCancelled  CheckoutStatus = "cancelled"
)

// CheckoutWorkflowInput starts a checkout session for a selected offer
type CheckoutWorkflowInput struct {
	SessionID string      `json:"sessionId"`
	Offer     FlightOffer `json:"offer"`
}

// CheckoutState is the queryable state of a checkout session.
// Total is recomputed on every mutation so clients always see a live price.
type CheckoutState struct {
	SessionID string         `json:"sessionId"`
	Step      CheckoutStep   `json:"step"`
	Status    CheckoutStatus `json:"status"`
	Passenger Passenger      `json:"passenger"`
	Extras    Extras         `json:"extras"`
	Seat      string         `json:"seat,omitempty"`
	Total     int            `json:"total"`
	BookingID string         `json:"bookingId,omitempty"`
}

// Signals for checkout session communication
const (
	SignalSetPassenger = "set-passenger"
	SignalSetExtras    = "set-extras"
	SignalSelectSeat   = "select-seat"
	SignalAdvance      = "advance"
	SignalBack         = "back"
	SignalCancel       = "cancel"
)

// Queries for checkout session state
const (
	QueryGetState = "get-state"
)

// SetPassengerSignal is sent when the traveller details are entered
type SetPassengerSignal struct {
	Passenger Passenger `json:"passenger"`
}

// SetExtrasSignal is sent when add-ons are toggled
type SetExtrasSignal struct {
	Extras Extras `json:"extras"`
}

// SelectSeatSignal is sent when a seat is picked
type SelectSeatSignal struct {
	Seat string `json:"seat"`
}

// StartCheckoutRequest begins a checkout session for an offer
type StartCheckoutRequest struct {
	FlightID string `json:"flightId"`
}

// SelectSeatRequest picks a seat for the session
type SelectSeatRequest struct {
	Seat string `json:"seat"`
}

// CheckoutResult is the terminal outcome of a checkout workflow
type CheckoutResult struct {
	Confirmed bool   `json:"confirmed"`
	BookingID string `json:"bookingId,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
