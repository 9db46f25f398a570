package usecases

import (
	"context"
	"strings"

	"rentora/internal/application/tenant/dto"
	"rentora/internal/domain/tenant"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/validation"
)

type UpdateTenantCommand struct {
	ID       uint
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	LogoURL  *string
	IsActive *bool
}

type UpdateTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewUpdateTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *UpdateTenantUseCase {
	return &UpdateTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *UpdateTenantUseCase) Execute(ctx context.Context, cmd UpdateTenantCommand) (*dto.TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, errors.NewValidationError("el nombre de la empresa es requerido")
		}
		t.Name = name
	}
	if cmd.Email != nil {
		if !validation.ValidateEmail(*cmd.Email) {
			return nil, errors.NewValidationError("Formato de email inválido")
		}
		t.Email = *cmd.Email
	}
	if cmd.Phone != nil {
		t.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		t.Address = *cmd.Address
	}
	if cmd.LogoURL != nil {
		t.LogoURL = *cmd.LogoURL
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			t.Activate()
		} else {
			t.Deactivate()
		}
	}

	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("tenant updated", "tenant_id", t.ID)
	return dto.FromTenant(t), nil
}
