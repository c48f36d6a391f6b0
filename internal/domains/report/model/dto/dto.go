package dto

import (
	bookingModel "catering/internal/domains/booking/model"
	"catering/internal/domains/report/model"
)

type SummaryResponse struct {
	Bookings    map[string]int `json:"bookings"`
	Orders      int            `json:"orders"`
	PaidRevenue float64        `json:"paidRevenue"`
	MenuItems   int            `json:"menuItems"`
	Employees   int            `json:"employees"`
}

// NewSummary reports every booking status, including those with no bookings.
func NewSummary(counts []model.StatusCount, totals model.OrderTotals, catalog model.Catalog) SummaryResponse {
	res := SummaryResponse{
		Bookings:    map[string]int{},
		Orders:      totals.Orders,
		PaidRevenue: totals.PaidRevenue,
		MenuItems:   catalog.MenuItems,
		Employees:   catalog.Employees,
	}

	for _, status := range bookingModel.Statuses() {
		res.Bookings[status.String()] = 0
	}

	for _, count := range counts {
		res.Bookings[count.Status] += count.Total
	}

	return res
}
