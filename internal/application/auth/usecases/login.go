package usecases

import (
	"context"

	"rentora/internal/application/auth/dto"
	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   *auth.PasswordHasher
	jwt      *auth.JWTService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher *auth.PasswordHasher, jwt *auth.JWTService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, jwt: jwt, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.TokenDTO, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}
	if !uc.hasher.Verify(cmd.Password, u.PasswordHash) {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.jwt.Generate(u.ID, u.Email)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID, "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID)
	return &dto.TokenDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         dto.UserDTO{ID: u.ID, Email: u.Email, Name: u.Name},
	}, nil
}
