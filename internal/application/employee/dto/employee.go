// Package dto carries the employee context's shapes.
package dto

import (
	"rentora/internal/domain/employee"
	"rentora/internal/shared/biztime"
)

type EmployeeDTO struct {
	ID                uint    `json:"id"`
	TenantID          uint    `json:"tenant_id"`
	Name              string  `json:"name"`
	Cedula            string  `json:"cedula"`
	WorkShift         string  `json:"work_shift"`
	CommissionPercent float64 `json:"commission_percent"`
	HireDate          string  `json:"hire_date"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
}

func FromEmployee(e *employee.Employee) *EmployeeDTO {
	return &EmployeeDTO{
		ID:                e.ID,
		TenantID:          e.TenantID,
		Name:              e.Name,
		Cedula:            e.Cedula,
		WorkShift:         string(e.WorkShift),
		CommissionPercent: e.CommissionPercent,
		HireDate:          biztime.FormatDate(e.HireDate),
		Phone:             e.Phone,
		Address:           e.Address,
	}
}
