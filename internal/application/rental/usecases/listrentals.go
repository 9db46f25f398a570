package usecases

import (
	"context"

	"rentora/internal/application/rental/dto"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/logger"
)

type ListRentalsUseCase struct {
	rentalRepo rental.Repository
	logger     logger.Interface
}

func NewListRentalsUseCase(rentalRepo rental.Repository, logger logger.Interface) *ListRentalsUseCase {
	return &ListRentalsUseCase{rentalRepo: rentalRepo, logger: logger}
}

func (uc *ListRentalsUseCase) Execute(ctx context.Context, filter rental.Filter) ([]*dto.RentalDTO, error) {
	rentals, err := uc.rentalRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.RentalDTO, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, dto.FromRental(r))
	}
	return out, nil
}
