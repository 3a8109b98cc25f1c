// Package generator produces synthetic flight offers for a search query.
// All draws are bounded, so generation is total: malformed input degrades to
// an "UNKNOWN" route label instead of failing.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/skyreserve/booking-system/pkg/models"
)

const (
	minResults = 8
	maxResults = 9

	usdRate = 83 // fixed approximate INR per USD, not a live rate
)

var stopCategories = []models.StopCategory{
	models.StopsNonStop,
	models.StopsOneStop,
	models.StopsTwoStops,
}

var cabinClasses = []models.CabinClass{
	models.CabinClassEconomy,
	models.CabinClassBusiness,
	models.CabinClassFirst,
}

var weatherConditions = []models.WeatherCondition{
	models.WeatherSunny,
	models.WeatherCloudy,
	models.WeatherRainy,
	models.WeatherClear,
}

// Generator creates flight offer batches from an injectable random source,
// so tests can assert exact outputs for known seeds.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Generator seeded from the current time.
func New() *Generator {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSource creates a Generator using the given random source.
func NewWithSource(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate produces a batch of 8-9 offers for the given route and date.
// The first offer is always Non-stop so a baseline option exists.
func (g *Generator) Generate(origin, destination, date string) []models.FlightOffer {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := g.randInt(minResults, maxResults)

	domestic := isIndianLocation(origin) && isIndianLocation(destination)
	airlines := indianAirlines
	if !domestic {
		airlines = append(append([]string{}, indianAirlines...), internationalAirlines...)
	}

	offers := make([]models.FlightOffer, 0, count)
	for i := 0; i < count; i++ {
		airline := airlines[g.randInt(0, len(airlines)-1)]

		stops := stopCategories[g.randInt(0, 2)]
		if i == 0 {
			stops = models.StopsNonStop
		}

		duration := g.drawDuration(domestic, stops)
		price, currency := g.drawPrice(domestic)

		class := cabinClasses[g.randInt(0, 2)]
		price = applyClassMultiplier(price, class)

		depMinutes := g.drawDeparture()

		offers = append(offers, models.FlightOffer{
			ID:            g.randBase36(6),
			FlightNumber:  flightNumber(airline, g.randInt(100, 999)),
			Airline:       airline,
			Origin:        routeLabel(origin),
			Destination:   routeLabel(destination),
			DepartureTime: formatClock(depMinutes),
			ArrivalTime:   formatArrival(depMinutes, duration),
			Duration:      formatDuration(duration),
			Stops:         stops,
			Price:         price,
			Currency:      currency,
			Class:         class,
			PointsEarned:  loyaltyPoints(price, currency),
			Weather: models.Weather{
				Temp:      g.randInt(15, 35),
				Condition: weatherConditions[g.randInt(0, 3)],
			},
			Date: date,
		})
	}

	return offers
}

// BookingID returns a fresh uppercase alphanumeric booking identifier.
func (g *Generator) BookingID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return strings.ToUpper(g.randBase36(6))
}

// drawDuration picks a base duration for the route type and adds the
// stop-count penalty. Stops lengthen the trip but never touch the price draw.
func (g *Generator) drawDuration(domestic bool, stops models.StopCategory) int {
	var duration int
	if domestic {
		duration = g.randInt(60, 240)
	} else {
		duration = g.randInt(300, 1200)
	}
	switch stops {
	case models.StopsOneStop:
		duration += g.randInt(120, 300)
	case models.StopsTwoStops:
		duration += g.randInt(300, 600)
	}
	return duration
}

func (g *Generator) drawPrice(domestic bool) (int, models.Currency) {
	if domestic {
		return g.randInt(3000, 15000), models.CurrencyINR
	}
	return g.randInt(40000, 150000) / usdRate, models.CurrencyUSD
}

// drawDeparture picks a random quarter-hour instant, in minutes past midnight.
func (g *Generator) drawDeparture() int {
	hour := g.randInt(0, 23)
	quarter := []int{0, 15, 30, 45}[g.randInt(0, 3)]
	return hour*60 + quarter
}

func (g *Generator) randInt(min, max int) int {
	return g.rnd.Intn(max-min+1) + min
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (g *Generator) randBase36(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[g.rnd.Intn(len(base36))])
	}
	return b.String()
}

func applyClassMultiplier(price int, class models.CabinClass) int {
	switch class {
	case models.CabinClassBusiness:
		return int(float64(price) * 2.5)
	case models.CabinClassFirst:
		return price * 5
	default:
		return price
	}
}

func loyaltyPoints(price int, currency models.Currency) int {
	if currency == models.CurrencyUSD {
		return price
	}
	return price / 10
}

func flightNumber(airline string, num int) string {
	prefix := airline
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return fmt.Sprintf("%s %d", strings.ToUpper(prefix), num)
}

func routeLabel(name string) string {
	if strings.TrimSpace(name) == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(name)
}

func isIndianLocation(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range indianKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// formatClock renders minutes past midnight on a 12-hour clock, e.g. "3:04 PM".
func formatClock(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, ampm)
}

// formatArrival adds the trip duration to the departure instant and appends a
// " +N" marker when the arrival crosses one or more midnights.
func formatArrival(depMinutes, duration int) string {
	total := depMinutes + duration
	dayDiff := total / (24 * 60)
	clock := formatClock(total % (24 * 60))
	if dayDiff > 0 {
		return fmt.Sprintf("%s +%d", clock, dayDiff)
	}
	return clock
}

func formatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
