package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/skyreserve/booking-system/pkg/models"
)

const (
	userFile     = "skyreserve_user.json"
	bookingsFile = "skyreserve_bookings.json"
)

// FileStore keeps the two state entries as JSON files under a directory,
// mirroring the original application's local-storage layout. A missing or
// unreadable file reads as "no data".
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the state directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) GetUser(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user models.User
	if !s.read(userFile, &user) || user.Email == "" {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *FileStore) PutUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(userFile, user)
}

func (s *FileStore) DeleteUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, userFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear user: %w", err)
	}
	return nil
}

func (s *FileStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadBookings(), nil
}

func (s *FileStore) InsertBooking(ctx context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := append([]models.Booking{booking}, s.loadBookings()...)
	return s.write(bookingsFile, bookings)
}

func (s *FileStore) DeleteBooking(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := s.loadBookings()
	kept := make([]models.Booking, 0, len(bookings))
	found := false
	for _, b := range bookings {
		if b.BookingID == bookingID {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return ErrNotFound
	}
	return s.write(bookingsFile, kept)
}

func (s *FileStore) loadBookings() []models.Booking {
	var bookings []models.Booking
	if !s.read(bookingsFile, &bookings) {
		return nil
	}
	return bookings
}

// read reports whether the entry existed and decoded cleanly.
func (s *FileStore) read(name string, v interface{}) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *FileStore) write(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
