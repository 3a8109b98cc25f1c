// Package database is the Postgres-backed Store, used when DATABASE_URL is set.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skyreserve/booking-system/internal/store"
	"github.com/skyreserve/booking-system/pkg/models"
)

// Repository implements store.Store on a pgx connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Migrate creates the two state tables when they do not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_session (
			id          BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (id),
			name        TEXT NOT NULL,
			email       TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS bookings (
			booking_id  TEXT PRIMARY KEY,
			offer       JSONB NOT NULL,
			passenger   JSONB NOT NULL,
			seat        TEXT NOT NULL,
			baggage     BOOLEAN NOT NULL,
			insurance   BOOLEAN NOT NULL,
			total       INTEGER NOT NULL,
			booked_at   TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// --- User session ---

func (r *Repository) GetUser(ctx context.Context) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT name, email FROM user_session WHERE id
	`).Scan(&u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *Repository) PutUser(ctx context.Context, user models.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_session (id, name, email) VALUES (TRUE, $1, $2)
		ON CONFLICT (id) DO UPDATE SET name = $1, email = $2
	`, user.Name, user.Email)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *Repository) DeleteUser(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM user_session`)
	if err != nil {
		return fmt.Errorf("failed to clear user: %w", err)
	}
	return nil
}

// --- Bookings ---

func (r *Repository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT booking_id, offer, passenger, seat, baggage, insurance, total, booked_at
		FROM bookings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var (
			b               models.Booking
			offerRaw, paxRaw []byte
		)
		err := rows.Scan(
			&b.BookingID, &offerRaw, &paxRaw, &b.Seat,
			&b.Extras.Baggage, &b.Extras.Insurance, &b.Total, &b.BookedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		if err := json.Unmarshal(offerRaw, &b.Offer); err != nil {
			return nil, fmt.Errorf("failed to decode offer snapshot: %w", err)
		}
		if err := json.Unmarshal(paxRaw, &b.Passenger); err != nil {
			return nil, fmt.Errorf("failed to decode passenger: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *Repository) InsertBooking(ctx context.Context, booking models.Booking) error {
	offerRaw, err := json.Marshal(booking.Offer)
	if err != nil {
		return fmt.Errorf("failed to encode offer snapshot: %w", err)
	}
	paxRaw, err := json.Marshal(booking.Passenger)
	if err != nil {
		return fmt.Errorf("failed to encode passenger: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO bookings (booking_id, offer, passenger, seat, baggage, insurance, total, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, booking.BookingID, offerRaw, paxRaw, booking.Seat,
		booking.Extras.Baggage, booking.Extras.Insurance, booking.Total, booking.BookedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *Repository) DeleteBooking(ctx context.Context, bookingID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
