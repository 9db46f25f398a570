package usecases

import (
	"context"

	"rentora/internal/application/client/dto"
	"rentora/internal/domain/client"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, id, tenantID uint) (*dto.ClientDTO, error) {
	c, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenantID != 0 && c.TenantID != tenantID {
		return nil, errors.NewNotFoundError("client not found")
	}
	return dto.FromClient(c), nil
}
