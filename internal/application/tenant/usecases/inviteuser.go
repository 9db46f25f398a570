package usecases

import (
	"context"

	"rentora/internal/application/tenant/dto"
	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/validation"
)

type InviteUserCommand struct {
	TenantID uint
	Email    string
	Name     string
	Password string
	Role     string
}

// InviteUserUseCase creates a staff account inside a tenant. An existing
// user is attached with a new membership; a new one is created first.
type InviteUserUseCase struct {
	userRepo       user.Repository
	membershipRepo user.MembershipRepository
	hasher         *auth.PasswordHasher
	logger         logger.Interface
}

func NewInviteUserUseCase(
	userRepo user.Repository,
	membershipRepo user.MembershipRepository,
	hasher *auth.PasswordHasher,
	logger logger.Interface,
) *InviteUserUseCase {
	return &InviteUserUseCase{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		hasher:         hasher,
		logger:         logger,
	}
}

func (uc *InviteUserUseCase) Execute(ctx context.Context, cmd InviteUserCommand) (*dto.MemberDTO, error) {
	role := user.Role(cmd.Role)
	if !role.IsAssignable() {
		return nil, errors.NewValidationError("rol inválido")
	}
	if !validation.ValidateEmail(cmd.Email) {
		return nil, errors.NewValidationError("Formato de email inválido")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		if len(cmd.Password) < 8 {
			return nil, errors.NewValidationError("la contraseña debe tener al menos 8 caracteres")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to process password")
		}
		u, err = user.NewUser(cmd.Email, cmd.Name, hash)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Create(ctx, u); err != nil {
			return nil, err
		}
	} else {
		// One active membership per user keeps role resolution
		// unambiguous.
		existing, err := uc.membershipRepo.GetActiveByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.NewConflictError("el usuario ya pertenece a una empresa")
		}
	}

	membership, err := user.NewMembership(cmd.TenantID, u.ID, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	uc.logger.Infow("user invited", "tenant_id", cmd.TenantID, "user_id", u.ID, "role", role)
	return &dto.MemberDTO{
		MembershipID: membership.ID,
		UserID:       u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(membership.Role),
		IsActive:     membership.IsActive,
	}, nil
}
