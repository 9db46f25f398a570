package usecases

import (
	"context"
	"strings"

	"rentora/internal/application/client/dto"
	"rentora/internal/domain/client"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/validation"
)

type UpdateClientCommand struct {
	ID               uint
	TenantID         uint
	Name             *string
	Cedula           *string
	CreditCardNumber *string
	CreditLimitCents *int64
	PersonType       *string
	Phone            *string
	Address          *string
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	c, err := uc.clientRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.TenantID != 0 && c.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("client not found")
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, errors.NewValidationError("el nombre es requerido")
		}
		c.Name = name
	}
	if cmd.Cedula != nil {
		if msg := validation.Message("cedula", *cmd.Cedula); msg != "" {
			return nil, errors.NewValidationError(msg)
		}
		taken, err := uc.clientRepo.ExistsByCedula(ctx, c.TenantID, *cmd.Cedula, c.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewConflictError("ya existe un cliente con esta cédula")
		}
		c.Cedula = validation.FormatCedula(*cmd.Cedula)
	}
	if cmd.CreditCardNumber != nil {
		c.CreditCardNumber = *cmd.CreditCardNumber
	}
	if cmd.CreditLimitCents != nil {
		if *cmd.CreditLimitCents < 0 {
			return nil, errors.NewValidationError("El límite de crédito no puede ser negativo")
		}
		c.CreditLimitCents = *cmd.CreditLimitCents
	}
	if cmd.PersonType != nil {
		pt := client.PersonType(*cmd.PersonType)
		if !pt.IsValid() {
			return nil, errors.NewValidationError("tipo de persona inválido")
		}
		c.PersonType = pt
	}
	if cmd.Phone != nil {
		c.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		c.Address = *cmd.Address
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Infow("client updated", "client_id", c.ID)
	return dto.FromClient(c), nil
}
