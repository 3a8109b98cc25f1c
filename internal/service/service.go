package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"github.com/skyreserve/booking-system/internal/generator"
	"github.com/skyreserve/booking-system/internal/search"
	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/pkg/models"
)

const (
	// TaskQueue is the Temporal task queue shared by server and worker.
	TaskQueue = "skyreserve-checkout-queue"

	// LoginDelay is the fixed artificial latency of the mock sign-in.
	LoginDelay = 1500 * time.Millisecond
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrSeatUnavailable = errors.New("seat not available")
)

// BookingService defines the application service surface.
type BookingService interface {
	SearchFlights(ctx context.Context, req models.SearchRequest) []models.FlightOffer
	ListFlights(ctx context.Context, criteria search.Criteria) []models.FlightOffer
	GetFlight(ctx context.Context, flightID string) (*models.FlightOffer, error)
	GetFlightSeats(ctx context.Context, flightID string) ([]models.Seat, error)

	StartCheckout(ctx context.Context, flightID string) (*models.CheckoutState, error)
	GetCheckoutState(ctx context.Context, sessionID string) (*models.CheckoutState, error)
	SetPassenger(ctx context.Context, sessionID string, passenger models.Passenger) error
	SetExtras(ctx context.Context, sessionID string, extras models.Extras) error
	SelectSeat(ctx context.Context, sessionID string, seat string) error
	Advance(ctx context.Context, sessionID string) error
	Back(ctx context.Context, sessionID string) error
	CancelCheckout(ctx context.Context, sessionID string) error

	ListBookings(ctx context.Context) ([]models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error

	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	Promotions(ctx context.Context) []models.Promotion
}

// bookingServiceImpl implements BookingService
type bookingServiceImpl struct {
	temporalClient client.Client
	gen            *generator.Generator
	store          store.Store

	mu      sync.RWMutex
	catalog []models.FlightOffer
	byID    map[string]models.FlightOffer
}

// NewBookingService creates a new BookingService.
func NewBookingService(temporalClient client.Client, gen *generator.Generator, st store.Store) BookingService {
	return &bookingServiceImpl{
		temporalClient: temporalClient,
		gen:            gen,
		store:          st,
		byID:           make(map[string]models.FlightOffer),
	}
}

// SearchFlights generates a fresh batch for the route and replaces the
// current catalog with it.
func (s *bookingServiceImpl) SearchFlights(ctx context.Context, req models.SearchRequest) []models.FlightOffer {
	offers := s.gen.Generate(req.Origin, req.Destination, req.Date)

	s.mu.Lock()
	s.catalog = offers
	s.byID = make(map[string]models.FlightOffer, len(offers))
	for _, o := range offers {
		s.byID[o.ID] = o
	}
	s.mu.Unlock()

	return offers
}

// ListFlights returns the current catalog narrowed by the filter set.
func (s *bookingServiceImpl) ListFlights(ctx context.Context, criteria search.Criteria) []models.FlightOffer {
	s.mu.RLock()
	offers := s.catalog
	s.mu.RUnlock()
	return search.Filter(offers, criteria)
}

func (s *bookingServiceImpl) GetFlight(ctx context.Context, flightID string) (*models.FlightOffer, error) {
	s.mu.RLock()
	offer, ok := s.byID[flightID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &offer, nil
}

func (s *bookingServiceImpl) GetFlightSeats(ctx context.Context, flightID string) ([]models.Seat, error) {
	if _, err := s.GetFlight(ctx, flightID); err != nil {
		return nil, err
	}
	return generator.SeatMap(), nil
}

// --- Checkout sessions ---

func (s *bookingServiceImpl) StartCheckout(ctx context.Context, flightID string) (*models.CheckoutState, error) {
	offer, err := s.GetFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()[:8]

	input := models.CheckoutWorkflowInput{
		SessionID: sessionID,
		Offer:     *offer,
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:        "checkout-" + sessionID,
		TaskQueue: TaskQueue,
	}

	_, err = s.temporalClient.ExecuteWorkflow(ctx, workflowOptions, "CheckoutWorkflow", input)
	if err != nil {
		return nil, fmt.Errorf("failed to start checkout workflow: %w", err)
	}

	return &models.CheckoutState{
		SessionID: sessionID,
		Step:      models.StepPassengerInfo,
		Status:    models.CheckoutStatusInProgress,
		Total:     offer.Price,
	}, nil
}

func (s *bookingServiceImpl) GetCheckoutState(ctx context.Context, sessionID string) (*models.CheckoutState, error) {
	response, err := s.temporalClient.QueryWorkflow(ctx, "checkout-"+sessionID, "", models.QueryGetState)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkout session: %w", err)
	}

	var state models.CheckoutState
	if err := response.Get(&state); err != nil {
		return nil, fmt.Errorf("failed to decode checkout state: %w", err)
	}
	return &state, nil
}

func (s *bookingServiceImpl) SetPassenger(ctx context.Context, sessionID string, passenger models.Passenger) error {
	return s.signal(ctx, sessionID, models.SignalSetPassenger, models.SetPassengerSignal{Passenger: passenger})
}

func (s *bookingServiceImpl) SetExtras(ctx context.Context, sessionID string, extras models.Extras) error {
	return s.signal(ctx, sessionID, models.SignalSetExtras, models.SetExtrasSignal{Extras: extras})
}

// SelectSeat validates the seat against the cabin layout before signalling.
func (s *bookingServiceImpl) SelectSeat(ctx context.Context, sessionID string, seat string) error {
	found := false
	for _, candidate := range generator.SeatMap() {
		if candidate.ID != seat {
			continue
		}
		if candidate.Occupied {
			return ErrSeatUnavailable
		}
		found = true
		break
	}
	if !found {
		return ErrSeatUnavailable
	}
	return s.signal(ctx, sessionID, models.SignalSelectSeat, models.SelectSeatSignal{Seat: seat})
}

func (s *bookingServiceImpl) Advance(ctx context.Context, sessionID string) error {
	return s.signal(ctx, sessionID, models.SignalAdvance, nil)
}

func (s *bookingServiceImpl) Back(ctx context.Context, sessionID string) error {
	return s.signal(ctx, sessionID, models.SignalBack, nil)
}

func (s *bookingServiceImpl) CancelCheckout(ctx context.Context, sessionID string) error {
	return s.signal(ctx, sessionID, models.SignalCancel, nil)
}

func (s *bookingServiceImpl) signal(ctx context.Context, sessionID, name string, payload interface{}) error {
	return s.temporalClient.SignalWorkflow(ctx, "checkout-"+sessionID, "", name, payload)
}

// --- Booking history ---

func (s *bookingServiceImpl) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.store.ListBookings(ctx)
}

func (s *bookingServiceImpl) CancelBooking(ctx context.Context, bookingID string) error {
	return s.store.DeleteBooking(ctx, bookingID)
}

// --- Mock auth ---

// Login accepts any credentials after a fixed simulated delay. The wait is
// abandoned when the caller goes away.
func (s *bookingServiceImpl) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	select {
	case <-time.After(LoginDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	name := req.Name
	if name == "" {
		name = strings.SplitN(req.Email, "@", 2)[0]
	}

	user := models.User{Name: name, Email: req.Email}
	if err := s.store.PutUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *bookingServiceImpl) Logout(ctx context.Context) error {
	return s.store.DeleteUser(ctx)
}

func (s *bookingServiceImpl) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.store.GetUser(ctx)
}

// --- Promotions ---

var promotions = []models.Promotion{
	{
		ID:          1,
		Title:       "European Summer Sale",
		Description: "Experience the magic of Europe this summer with up to 30% off on all flights to London, Paris, and Rome.",
		Code:        "SUMMER30",
		Discount:    "30% OFF",
	},
	{
		ID:          2,
		Title:       "Tropical Paradise Escape",
		Description: "Book your dream getaway to Bali or the Maldives. Premium Economy starting from just $899.",
		Code:        "ISLANDVIBES",
		Discount:    "$200 OFF",
	},
	{
		ID:          3,
		Title:       "Business Class Upgrade",
		Description: "Treat yourself to ultimate comfort. Instant upgrades available for selected trans-Atlantic routes.",
		Code:        "ELITEFLY",
		Discount:    "UPGRADE",
	},
}

func (s *bookingServiceImpl) Promotions(ctx context.Context) []models.Promotion {
	return promotions
}
