// Package search narrows a generated offer list down to the visible subset.
package search

import (
	"strings"

	"github.com/skyreserve/booking-system/pkg/models"
)

// ClassAll disables cabin-class filtering.
const ClassAll = "All"

// Criteria is the filter set applied to a flight list. Empty fields are
// inactive; active predicates combine with AND.
type Criteria struct {
	Class       string
	Origin      string
	Destination string
	Date        string
}

// Filter returns the offers matching every active predicate, preserving the
// input order. An empty result is a valid, displayable state.
func Filter(offers []models.FlightOffer, c Criteria) []models.FlightOffer {
	out := make([]models.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if !matches(offer, c) {
			continue
		}
		out = append(out, offer)
	}
	return out
}

func matches(offer models.FlightOffer, c Criteria) bool {
	if c.Class != "" && c.Class != ClassAll && string(offer.Class) != c.Class {
		return false
	}
	if c.Origin != "" && !containsFold(offer.Origin, c.Origin) {
		return false
	}
	if c.Destination != "" && !containsFold(offer.Destination, c.Destination) {
		return false
	}
	if c.Date != "" && offer.Date != c.Date {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
