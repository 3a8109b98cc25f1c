// Package activities hosts the side-effecting steps of the checkout workflow.
package activities

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"

	"github.com/skyreserve/booking-system/internal/generator"
	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/pkg/models"
)

// PaymentDelay is the fixed artificial latency of the simulated payment
// provider. The charge itself always succeeds.
const PaymentDelay = 2 * time.Second

// Activities holds shared dependencies for activity implementations.
type Activities struct {
	store store.Store
	gen   *generator.Generator
}

// NewActivities creates the activity set backed by the given store.
func NewActivities(st store.Store, gen *generator.Generator) *Activities {
	return &Activities{store: st, gen: gen}
}

// ProcessPaymentInput describes the simulated charge.
type ProcessPaymentInput struct {
	SessionID string          `json:"sessionId"`
	Amount    int             `json:"amount"`
	Currency  models.Currency `json:"currency"`
}

// ProcessPayment waits out the fixed provider delay and succeeds. The wait
// honors context cancellation so a dismissed session does not fire a late
// completion.
func (a *Activities) ProcessPayment(ctx context.Context, input ProcessPaymentInput) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing payment", "sessionId", input.SessionID, "amount", input.Amount, "currency", input.Currency)

	select {
	case <-time.After(PaymentDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.Info("Payment processed", "sessionId", input.SessionID)
	return nil
}

// PersistBookingInput carries everything needed to derive the booking record.
type PersistBookingInput struct {
	Offer     models.FlightOffer `json:"offer"`
	Passenger models.Passenger   `json:"passenger"`
	Extras    models.Extras      `json:"extras"`
	Seat      string             `json:"seat"`
	Total     int                `json:"total"`
}

// PersistBookingResult returns the generated booking identifier.
type PersistBookingResult struct {
	BookingID string `json:"bookingId"`
}

// PersistBooking derives a booking record from the confirmed offer and
// prepends it to the stored list.
func (a *Activities) PersistBooking(ctx context.Context, input PersistBookingInput) (*PersistBookingResult, error) {
	logger := activity.GetLogger(ctx)

	booking := models.Booking{
		BookingID: a.gen.BookingID(),
		Offer:     input.Offer,
		Passenger: input.Passenger,
		Seat:      input.Seat,
		Extras:    input.Extras,
		Total:     input.Total,
		BookedAt:  time.Now().Format("1/2/2006"),
	}

	if err := a.store.InsertBooking(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Booking persisted", "bookingId", booking.BookingID, "total", booking.Total)
	return &PersistBookingResult{BookingID: booking.BookingID}, nil
}

// SendConfirmationInput describes the confirmation notice.
type SendConfirmationInput struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Route     string `json:"route"`
	Seat      string `json:"seat"`
	Group     string `json:"group"`
}

// SendConfirmation records the confirmation notice. There is no mail
// transport in this system; the notice goes to the log.
func (a *Activities) SendConfirmation(ctx context.Context, input SendConfirmationInput) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Booking confirmation",
		"bookingId", input.BookingID,
		"email", input.Email,
		"route", input.Route,
		"seat", input.Seat,
		"boardingGroup", input.Group,
	)
	return nil
}
