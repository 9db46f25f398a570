package usecases

import (
	"context"

	"rentora/internal/application/rental/dto"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type GetRentalUseCase struct {
	rentalRepo rental.Repository
	logger     logger.Interface
}

func NewGetRentalUseCase(rentalRepo rental.Repository, logger logger.Interface) *GetRentalUseCase {
	return &GetRentalUseCase{rentalRepo: rentalRepo, logger: logger}
}

func (uc *GetRentalUseCase) Execute(ctx context.Context, id, tenantID uint) (*dto.RentalDTO, error) {
	r, err := uc.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenantID != 0 && r.TenantID != tenantID {
		return nil, errors.NewNotFoundError("rental not found")
	}
	return dto.FromRental(r), nil
}
