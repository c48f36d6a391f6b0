package dto

import (
	bookingModel "catering/internal/domains/booking/model"
	"catering/shared/constant"
	"catering/shared/timezone"
	"math"
)

type BreakdownRow struct {
	ID         string  `json:"id"`
	ClientName string  `json:"clientName"`
	EventDate  string  `json:"eventDate"`
	Amount     float64 `json:"amount"`
}

type PayrollResponse struct {
	Salary          float64        `json:"salary"`
	Paid            float64        `json:"paid"`
	CompletedEvents int            `json:"completedEvents"`
	Breakdown       []BreakdownRow `json:"breakdown"`
}

// Compute totals the menu prices of each booking. Every occurrence of an id counts and
// ids without a price contribute nothing.
func Compute(bookings []bookingModel.Booking, prices map[string]float64) PayrollResponse {
	res := PayrollResponse{
		CompletedEvents: len(bookings),
		Breakdown:       make([]BreakdownRow, 0, len(bookings)),
	}

	for _, booking := range bookings {
		var amount float64
		for _, id := range booking.Menu {
			amount += prices[id]
		}

		amount = roundCents(amount)

		row := BreakdownRow{
			ID:        booking.ID,
			EventDate: timezone.Format(booking.EventDate, constant.DateOnlyFormat),
			Amount:    amount,
		}

		if booking.ClientName != nil {
			row.ClientName = *booking.ClientName
		}

		res.Salary += amount
		res.Breakdown = append(res.Breakdown, row)
	}

	res.Salary = roundCents(res.Salary)

	return res
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
