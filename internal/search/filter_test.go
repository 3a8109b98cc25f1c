package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreserve/booking-system/pkg/models"
)

func fixtureOffers() []models.FlightOffer {
	return []models.FlightOffer{
		{ID: "a1", Origin: "DELHI", Destination: "MUMBAI", Date: "2026-02-15", Class: models.CabinClassEconomy},
		{ID: "b2", Origin: "DELHI", Destination: "GOA", Date: "2026-02-15", Class: models.CabinClassBusiness},
		{ID: "c3", Origin: "SFO", Destination: "LONDON", Date: "2026-02-16", Class: models.CabinClassFirst},
		{ID: "d4", Origin: "NEW DELHI", Destination: "MUMBAI", Date: "2026-02-16", Class: models.CabinClassEconomy},
	}
}

func ids(offers []models.FlightOffer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}

func TestFilter_NoCriteriaReturnsAll(t *testing.T) {
	offers := fixtureOffers()

	got := Filter(offers, Criteria{})

	assert.Equal(t, ids(offers), ids(got))
}

func TestFilter_ClassAllIsInactive(t *testing.T) {
	got := Filter(fixtureOffers(), Criteria{Class: ClassAll})

	assert.Len(t, got, 4)
}

func TestFilter_ByClass(t *testing.T) {
	got := Filter(fixtureOffers(), Criteria{Class: "Business"})

	require.Len(t, got, 1)
	assert.Equal(t, "b2", got[0].ID)
}

func TestFilter_OriginSubstringCaseInsensitive(t *testing.T) {
	got := Filter(fixtureOffers(), Criteria{Origin: "delhi"})

	// "NEW DELHI" matches the substring too.
	assert.Equal(t, []string{"a1", "b2", "d4"}, ids(got))
}

func TestFilter_DateIsExact(t *testing.T) {
	got := Filter(fixtureOffers(), Criteria{Date: "2026-02-16"})

	assert.Equal(t, []string{"c3", "d4"}, ids(got))

	// A prefix of a real date matches nothing.
	assert.Empty(t, Filter(fixtureOffers(), Criteria{Date: "2026-02"}))
}

func TestFilter_PredicatesCombineWithAnd(t *testing.T) {
	got := Filter(fixtureOffers(), Criteria{
		Origin:      "delhi",
		Destination: "mumbai",
		Date:        "2026-02-15",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}

func TestFilter_EmptyResultIsValid(t *testing.T) {
	got := Filter(fixtureOffers(), Criteria{Origin: "tokyo"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_Idempotent(t *testing.T) {
	c := Criteria{Destination: "mumbai"}

	once := Filter(fixtureOffers(), c)
	twice := Filter(once, c)

	assert.Equal(t, once, twice)
}
