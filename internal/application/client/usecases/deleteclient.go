package usecases

import (
	"context"

	"rentora/internal/domain/client"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type DeleteClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeleteClientUseCase(clientRepo client.Repository, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, id, tenantID uint) error {
	c, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenantID != 0 && c.TenantID != tenantID {
		return errors.NewNotFoundError("client not found")
	}

	if err := uc.clientRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.logger.Infow("client removed", "client_id", id, "tenant_id", c.TenantID)
	return nil
}
