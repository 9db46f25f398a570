// Package dto carries the reporting context's shapes.
package dto

type LeaderDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Count        int    `json:"count"`
	Revenue      string `json:"revenue"`
	RevenueCents int64  `json:"revenue_cents"`
}

type ReportRowDTO struct {
	RentalID     uint   `json:"rental_id"`
	Number       string `json:"number"`
	RentalDate   string `json:"rental_date"`
	Vehicle      string `json:"vehicle"`
	Client       string `json:"client"`
	Employee     string `json:"employee"`
	DayCount     int    `json:"day_count"`
	PricePerDay  string `json:"price_per_day"`
	Total        string `json:"total"`
	TotalCents   int64  `json:"total_cents"`
	Status       string `json:"status"`
	Comment      string `json:"comment"`
}

type RentalReportDTO struct {
	Start             string         `json:"start"`
	End               string         `json:"end"`
	TotalRentals      int            `json:"total_rentals"`
	TotalRevenue      string         `json:"total_revenue"`
	TotalRevenueCents int64          `json:"total_revenue_cents"`
	TopVehicle        *LeaderDTO     `json:"top_vehicle,omitempty"`
	TopClient         *LeaderDTO     `json:"top_client,omitempty"`
	TopEmployee       *LeaderDTO     `json:"top_employee,omitempty"`
	Rows              []ReportRowDTO `json:"rows"`
}
