package usecases

import (
	"context"

	"rentora/internal/application/client/dto"
	"rentora/internal/domain/client"
	"rentora/internal/domain/subscription"
	"rentora/internal/domain/user"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/validation"
)

type CreateClientCommand struct {
	Principal        user.Principal
	TenantID         uint
	Name             string
	Cedula           string
	CreditCardNumber string
	CreditLimitCents int64
	PersonType       string
	Phone            string
	Address          string
}

// CreateClientUseCase registers a customer after validating the cedula,
// checking per-tenant cedula uniqueness and the plan cap. The superadmin
// bypasses the cap, not the uniqueness check.
type CreateClientUseCase struct {
	clientRepo client.Repository
	limitsRepo subscription.LimitsRepository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.Repository, limitsRepo subscription.LimitsRepository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{clientRepo: clientRepo, limitsRepo: limitsRepo, logger: logger}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	if msg := validation.Message("cedula", cmd.Cedula); msg != "" {
		return nil, errors.NewValidationError(msg)
	}

	if !cmd.Principal.IsSuperadmin() {
		limits, err := uc.limitsRepo.GetByTenant(ctx, cmd.TenantID)
		if err != nil {
			return nil, err
		}
		if !limits.CanAddClient() {
			return nil, errors.NewLimitReachedError("límite de clientes del plan alcanzado")
		}
	}

	taken, err := uc.clientRepo.ExistsByCedula(ctx, cmd.TenantID, cmd.Cedula, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewConflictError("ya existe un cliente con esta cédula")
	}

	c, err := client.NewClient(cmd.TenantID, cmd.Name, cmd.Cedula, cmd.CreditLimitCents, client.PersonType(cmd.PersonType))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	c.CreditCardNumber = cmd.CreditCardNumber
	c.Phone = cmd.Phone
	c.Address = cmd.Address

	if err := uc.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Infow("client registered", "client_id", c.ID, "tenant_id", c.TenantID)
	return dto.FromClient(c), nil
}
