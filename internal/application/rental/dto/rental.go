// Package dto carries the rental context's shapes.
package dto

import (
	"rentora/internal/domain/rental"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/utils"
)

type RentalDTO struct {
	ID               uint   `json:"id"`
	TenantID         uint   `json:"tenant_id"`
	Number           string `json:"number"`
	EmployeeID       uint   `json:"employee_id"`
	VehicleID        uint   `json:"vehicle_id"`
	ClientID         uint   `json:"client_id"`
	InspectionID     *uint  `json:"inspection_id,omitempty"`
	RentalDate       string `json:"rental_date"`
	ScheduledReturn  string `json:"scheduled_return"`
	ActualReturn     string `json:"actual_return,omitempty"`
	PricePerDay      string `json:"price_per_day"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	DayCount         int    `json:"day_count"`
	Total            string `json:"total"`
	TotalCents       int64  `json:"total_cents"`
	Comment          string `json:"comment"`
	Status           string `json:"status"`
}

func FromRental(r *rental.Rental) *RentalDTO {
	d := &RentalDTO{
		ID:               r.ID,
		TenantID:         r.TenantID,
		Number:           r.Number,
		EmployeeID:       r.EmployeeID,
		VehicleID:        r.VehicleID,
		ClientID:         r.ClientID,
		InspectionID:     r.InspectionID,
		RentalDate:       biztime.FormatDate(r.RentalDate),
		ScheduledReturn:  biztime.FormatDate(r.ScheduledReturn),
		PricePerDay:      utils.FormatCents(r.PricePerDayCents),
		PricePerDayCents: r.PricePerDayCents,
		DayCount:         r.DayCount,
		Total:            utils.FormatCents(r.TotalCents),
		TotalCents:       r.TotalCents,
		Comment:          r.Comment,
		Status:           string(r.Status),
	}
	if r.ActualReturn != nil {
		d.ActualReturn = biztime.FormatDate(*r.ActualReturn)
	}
	return d
}
