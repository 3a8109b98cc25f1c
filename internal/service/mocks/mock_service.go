package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skyreserve/booking-system/internal/search"
	"github.com/skyreserve/booking-system/pkg/models"
)

// MockBookingService is a mock implementation of service.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SearchFlights(ctx context.Context, req models.SearchRequest) []models.FlightOffer {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.FlightOffer)
}

func (m *MockBookingService) ListFlights(ctx context.Context, criteria search.Criteria) []models.FlightOffer {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.FlightOffer)
}

func (m *MockBookingService) GetFlight(ctx context.Context, flightID string) (*models.FlightOffer, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightOffer), args.Error(1)
}

func (m *MockBookingService) GetFlightSeats(ctx context.Context, flightID string) ([]models.Seat, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Seat), args.Error(1)
}

func (m *MockBookingService) StartCheckout(ctx context.Context, flightID string) (*models.CheckoutState, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutState), args.Error(1)
}

func (m *MockBookingService) GetCheckoutState(ctx context.Context, sessionID string) (*models.CheckoutState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutState), args.Error(1)
}

func (m *MockBookingService) SetPassenger(ctx context.Context, sessionID string, passenger models.Passenger) error {
	args := m.Called(ctx, sessionID, passenger)
	return args.Error(0)
}

func (m *MockBookingService) SetExtras(ctx context.Context, sessionID string, extras models.Extras) error {
	args := m.Called(ctx, sessionID, extras)
	return args.Error(0)
}

func (m *MockBookingService) SelectSeat(ctx context.Context, sessionID string, seat string) error {
	args := m.Called(ctx, sessionID, seat)
	return args.Error(0)
}

func (m *MockBookingService) Advance(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockBookingService) Back(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockBookingService) CancelCheckout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockBookingService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingService) CurrentUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockBookingService) Promotions(ctx context.Context) []models.Promotion {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Promotion)
}
