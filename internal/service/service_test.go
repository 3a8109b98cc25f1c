package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreserve/booking-system/internal/generator"
	"github.com/skyreserve/booking-system/internal/search"
	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/pkg/models"
)

// newTestService builds a service without a Temporal connection; only the
// catalog, history, auth and promotion paths are exercised here. The checkout
// session paths are covered by the workflow and handler tests.
func newTestService() BookingService {
	gen := generator.NewWithSource(rand.New(rand.NewSource(1)))
	return NewBookingService(nil, gen, store.NewMemStore())
}

func TestSearchFlights_ReplacesCatalog(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := svc.SearchFlights(ctx, models.SearchRequest{Origin: "Delhi", Destination: "Mumbai", Date: "2026-02-15"})
	require.NotEmpty(t, first)

	// The previous batch is gone after a new search.
	second := svc.SearchFlights(ctx, models.SearchRequest{Origin: "SFO", Destination: "LHR", Date: "2026-03-01"})
	require.NotEmpty(t, second)

	_, err := svc.GetFlight(ctx, first[0].ID)
	assert.ErrorIs(t, err, ErrFlightNotFound)

	got, err := svc.GetFlight(ctx, second[0].ID)
	require.NoError(t, err)
	assert.Equal(t, second[0], *got)
}

func TestListFlights_FiltersCatalog(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	offers := svc.SearchFlights(ctx, models.SearchRequest{Origin: "Delhi", Destination: "Goa", Date: "2026-02-15"})

	all := svc.ListFlights(ctx, search.Criteria{})
	assert.Equal(t, offers, all)

	business := svc.ListFlights(ctx, search.Criteria{Class: "Business"})
	for _, o := range business {
		assert.Equal(t, models.CabinClassBusiness, o.Class)
	}
	assert.LessOrEqual(t, len(business), len(offers))
}

func TestGetFlightSeats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	offers := svc.SearchFlights(ctx, models.SearchRequest{Origin: "Delhi", Destination: "Mumbai", Date: "2026-02-15"})

	seats, err := svc.GetFlightSeats(ctx, offers[0].ID)
	require.NoError(t, err)
	assert.Len(t, seats, 48)

	_, err = svc.GetFlightSeats(ctx, "missing")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestSelectSeat_RejectsBadSeats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Occupied and out-of-layout seats fail before any session lookup.
	assert.ErrorIs(t, svc.SelectSeat(ctx, "sess-1", "5A"), ErrSeatUnavailable)
	assert.ErrorIs(t, svc.SelectSeat(ctx, "sess-1", "9Z"), ErrSeatUnavailable)
}

func TestLogin_AbandonedOnCancel(t *testing.T) {
	svc := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, models.LoginRequest{Email: "asha@example.com"})
	assert.ErrorIs(t, err, context.Canceled)

	// Nothing was stored for the abandoned attempt.
	_, err = svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogin_DefaultsNameFromEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Login(ctx, models.LoginRequest{Email: "asha@example.com", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "asha", user.Name)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, *user, *current)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBookingHistory(t *testing.T) {
	st := store.NewMemStore()
	svc := NewBookingService(nil, generator.NewWithSource(rand.New(rand.NewSource(1))), st)
	ctx := context.Background()

	require.NoError(t, st.InsertBooking(ctx, models.Booking{BookingID: "AAA111"}))
	require.NoError(t, st.InsertBooking(ctx, models.Booking{BookingID: "BBB222"}))

	bookings, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "BBB222", bookings[0].BookingID)

	require.NoError(t, svc.CancelBooking(ctx, "BBB222"))
	assert.ErrorIs(t, svc.CancelBooking(ctx, "BBB222"), store.ErrNotFound)
}

func TestPromotions_Static(t *testing.T) {
	svc := newTestService()

	promos := svc.Promotions(context.Background())
	require.Len(t, promos, 3)
	assert.Equal(t, "SUMMER30", promos[0].Code)
}
