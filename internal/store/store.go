// Package store owns the persisted application state: the signed-in user and
// the ordered booking list. Persistence is an injected collaborator, loaded
// on demand and saved on every mutation.
package store

import (
	"context"
	"errors"

	"github.com/skyreserve/booking-system/pkg/models"
)

var (
	// ErrNotFound is returned when no user is signed in or a booking id is unknown.
	ErrNotFound = errors.New("not found")
)

// Store persists the user session and booking history.
// Implementations treat absent or corrupt data as empty, never as an error.
type Store interface {
	// GetUser returns the signed-in user, or ErrNotFound.
	GetUser(ctx context.Context) (*models.User, error)
	// PutUser records the signed-in user.
	PutUser(ctx context.Context, user models.User) error
	// DeleteUser clears the signed-in user. Clearing an empty session is a no-op.
	DeleteUser(ctx context.Context) error

	// ListBookings returns all bookings, newest first.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// InsertBooking prepends a booking to the list.
	InsertBooking(ctx context.Context, booking models.Booking) error
	// DeleteBooking removes exactly the booking with the given id, or ErrNotFound.
	DeleteBooking(ctx context.Context, bookingID string) error
}
