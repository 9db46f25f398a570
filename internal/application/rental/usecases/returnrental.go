package usecases

import (
	"context"
	"time"

	"rentora/internal/application/rental/dto"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type ReturnRentalCommand struct {
	ID         uint
	TenantID   uint
	ReturnDate string
}

// ReturnRentalUseCase closes a rental. Overdue rentals are returnable;
// returning twice is a conflict (the repository guards the transition
// against concurrent returns).
type ReturnRentalUseCase struct {
	rentalRepo rental.Repository
	logger     logger.Interface
}

func NewReturnRentalUseCase(rentalRepo rental.Repository, logger logger.Interface) *ReturnRentalUseCase {
	return &ReturnRentalUseCase{rentalRepo: rentalRepo, logger: logger}
}

func (uc *ReturnRentalUseCase) Execute(ctx context.Context, cmd ReturnRentalCommand) (*dto.RentalDTO, error) {
	r, err := uc.rentalRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.TenantID != 0 && r.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("rental not found")
	}

	returnDate := biztime.StartOfDayUTC(time.Now())
	if cmd.ReturnDate != "" {
		parsed, err := biztime.ParseDate(cmd.ReturnDate)
		if err != nil {
			return nil, errors.NewValidationError("fecha de devolución inválida, use YYYY-MM-DD")
		}
		returnDate = parsed
	}
	if returnDate.Before(r.RentalDate) {
		return nil, errors.NewValidationError("la fecha de devolución no puede ser anterior a la fecha de renta")
	}

	if err := r.MarkReturned(returnDate); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.rentalRepo.Return(ctx, r); err != nil {
		return nil, err
	}

	uc.logger.Infow("rental returned", "rental_id", r.ID, "number", r.Number, "tenant_id", r.TenantID)
	return dto.FromRental(r), nil
}
