// Package pricing computes the live checkout total.
package pricing

import (
	"strconv"
	"strings"

	"github.com/skyreserve/booking-system/pkg/models"
)

// Flat surcharges for optional add-ons and premium seating.
const (
	BaggageFee      = 45
	InsuranceFee    = 25
	FrontRowPremium = 50

	frontRowLimit = 2 // rows 1 and 2 carry the premium
)

// Quote returns base price + selected extras + seat-tier surcharge.
func Quote(base int, extras models.Extras, seat string) int {
	total := base
	if extras.Baggage {
		total += BaggageFee
	}
	if extras.Insurance {
		total += InsuranceFee
	}
	total += SeatPremium(seat)
	return total
}

// SeatPremium returns the surcharge for a seat id like "2C". Seats outside
// the front rows, and unselected seats, cost nothing extra.
func SeatPremium(seat string) int {
	if seatRow(seat) >= 1 && seatRow(seat) <= frontRowLimit {
		return FrontRowPremium
	}
	return 0
}

// BoardingGroup returns "Priority" for premium rows, "General" otherwise.
func BoardingGroup(seat string) string {
	if SeatPremium(seat) > 0 {
		return "Priority"
	}
	return "General"
}

func seatRow(seat string) int {
	digits := strings.TrimRightFunc(seat, func(r rune) bool {
		return r < '0' || r > '9'
	})
	row, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return row
}
