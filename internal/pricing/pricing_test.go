package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyreserve/booking-system/pkg/models"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		extras models.Extras
		seat   string
		want   int
	}{
		{"base only", 5000, models.Extras{}, "", 5000},
		{"baggage", 5000, models.Extras{Baggage: true}, "", 5045},
		{"insurance", 5000, models.Extras{Insurance: true}, "", 5025},
		{"both extras", 5000, models.Extras{Baggage: true, Insurance: true}, "", 5070},
		{"premium seat", 5000, models.Extras{}, "1A", 5050},
		{"everything", 5000, models.Extras{Baggage: true, Insurance: true}, "2F", 5120},
		{"regular seat adds nothing", 5000, models.Extras{}, "7C", 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.base, tt.extras, tt.seat))
		})
	}
}

func TestSeatPremium(t *testing.T) {
	assert.Equal(t, FrontRowPremium, SeatPremium("1A"))
	assert.Equal(t, FrontRowPremium, SeatPremium("2F"))
	assert.Equal(t, 0, SeatPremium("3A"))
	assert.Equal(t, 0, SeatPremium("8D"))
	assert.Equal(t, 0, SeatPremium(""))
	assert.Equal(t, 0, SeatPremium("XX"))
}

func TestBoardingGroup(t *testing.T) {
	assert.Equal(t, "Priority", BoardingGroup("2C"))
	assert.Equal(t, "General", BoardingGroup("5B"))
	assert.Equal(t, "General", BoardingGroup(""))
}
