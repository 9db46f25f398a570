// Package dto carries the client context's shapes.
package dto

import (
	"rentora/internal/domain/client"
	"rentora/internal/shared/utils"
)

type ClientDTO struct {
	ID               uint   `json:"id"`
	TenantID         uint   `json:"tenant_id"`
	Name             string `json:"name"`
	Cedula           string `json:"cedula"`
	CreditCardNumber string `json:"credit_card_number,omitempty"`
	CreditLimit      string `json:"credit_limit"`
	CreditLimitCents int64  `json:"credit_limit_cents"`
	PersonType       string `json:"person_type"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
}

func FromClient(c *client.Client) *ClientDTO {
	return &ClientDTO{
		ID:               c.ID,
		TenantID:         c.TenantID,
		Name:             c.Name,
		Cedula:           c.Cedula,
		CreditCardNumber: c.CreditCardNumber,
		CreditLimit:      utils.FormatCents(c.CreditLimitCents),
		CreditLimitCents: c.CreditLimitCents,
		PersonType:       string(c.PersonType),
		Phone:            c.Phone,
		Address:          c.Address,
	}
}
