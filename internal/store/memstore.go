package store

import (
	"context"
	"sync"

	"github.com/skyreserve/booking-system/pkg/models"
)

// MemStore is an in-memory Store used in tests and as a no-persistence fallback.
type MemStore struct {
	mu       sync.Mutex
	user     *models.User
	bookings []models.Booking
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) GetUser(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, ErrNotFound
	}
	u := *s.user
	return &u, nil
}

func (s *MemStore) PutUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	return nil
}

func (s *MemStore) DeleteUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

func (s *MemStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemStore) InsertBooking(ctx context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]models.Booking{booking}, s.bookings...)
	return nil
}

func (s *MemStore) DeleteBooking(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.BookingID == bookingID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
