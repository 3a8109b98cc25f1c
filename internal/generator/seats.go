package generator

import (
	"fmt"

	"github.com/skyreserve/booking-system/pkg/models"
)

const seatRows = 8

var seatColumns = []string{"A", "B", "C", "D", "E", "F"}

// SeatMap returns the cabin layout shown during seat selection. Occupancy is
// a fixed pattern of the seat coordinates, so every offer renders the same
// plausible scatter of taken seats.
func SeatMap() []models.Seat {
	seats := make([]models.Seat, 0, seatRows*len(seatColumns))
	for row := 1; row <= seatRows; row++ {
		for _, col := range seatColumns {
			seats = append(seats, models.Seat{
				ID:       fmt.Sprintf("%d%s", row, col),
				Row:      row,
				Column:   col,
				Occupied: (row+int(col[0]))%7 == 0,
			})
		}
	}
	return seats
}
