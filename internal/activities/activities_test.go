package activities

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	"github.com/skyreserve/booking-system/internal/generator"
	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/pkg/models"
)

func newActivityEnv(t *testing.T, st store.Store) *testsuite.TestActivityEnvironment {
	t.Helper()
	ts := &testsuite.WorkflowTestSuite{}
	env := ts.NewTestActivityEnvironment()
	env.SetTestTimeout(10 * time.Second)

	acts := NewActivities(st, generator.NewWithSource(rand.New(rand.NewSource(1))))
	env.RegisterActivity(acts.ProcessPayment)
	env.RegisterActivity(acts.PersistBooking)
	env.RegisterActivity(acts.SendConfirmation)
	return env
}

func TestProcessPayment_WaitsOutProviderDelay(t *testing.T) {
	env := newActivityEnv(t, store.NewMemStore())

	start := time.Now()
	_, err := env.ExecuteActivity("ProcessPayment", ProcessPaymentInput{
		SessionID: "sess-1",
		Amount:    5120,
		Currency:  models.CurrencyINR,
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), PaymentDelay)
}

func TestPersistBooking(t *testing.T) {
	st := store.NewMemStore()
	env := newActivityEnv(t, st)

	offer := models.FlightOffer{
		ID:           "abc123",
		FlightNumber: "IN 204",
		Airline:      "IndiGo",
		Origin:       "DELHI",
		Destination:  "MUMBAI",
		Price:        5000,
		Currency:     models.CurrencyINR,
	}
	input := PersistBookingInput{
		Offer:     offer,
		Passenger: models.Passenger{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"},
		Extras:    models.Extras{Baggage: true},
		Seat:      "2C",
		Total:     5095,
	}

	val, err := env.ExecuteActivity("PersistBooking", input)
	require.NoError(t, err)

	var result PersistBookingResult
	require.NoError(t, val.Get(&result))
	require.Len(t, result.BookingID, 6)

	bookings, err := st.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	got := bookings[0]
	assert.Equal(t, result.BookingID, got.BookingID)
	assert.Equal(t, offer, got.Offer)
	assert.Equal(t, "2C", got.Seat)
	assert.Equal(t, 5095, got.Total)
	assert.True(t, got.Extras.Baggage)
	assert.NotEmpty(t, got.BookedAt)
}

func TestPersistBooking_PrependsNewest(t *testing.T) {
	st := store.NewMemStore()
	env := newActivityEnv(t, st)

	for _, total := range []int{100, 200} {
		_, err := env.ExecuteActivity("PersistBooking", PersistBookingInput{Total: total})
		require.NoError(t, err)
	}

	bookings, err := st.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 200, bookings[0].Total)
	assert.Equal(t, 100, bookings[1].Total)
}

func TestSendConfirmation(t *testing.T) {
	env := newActivityEnv(t, store.NewMemStore())

	_, err := env.ExecuteActivity("SendConfirmation", SendConfirmationInput{
		BookingID: "AB12CD",
		Email:     "asha@example.com",
		Route:     "DELHI - MUMBAI",
		Seat:      "2C",
		Group:     "Priority",
	})

	assert.NoError(t, err)
}
