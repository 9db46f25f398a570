package usecases

import (
	"context"

	"rentora/internal/application/client/dto"
	"rentora/internal/domain/client"
	"rentora/internal/shared/logger"
)

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, filter client.Filter) ([]*dto.ClientDTO, error) {
	clients, err := uc.clientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.FromClient(c))
	}
	return out, nil
}
