package usecases

import (
	"context"

	"rentora/internal/application/auth/dto"
	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	jwt      *auth.JWTService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, jwt *auth.JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{userRepo: userRepo, jwt: jwt, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.TokenDTO, error) {
	claims, err := uc.jwt.Validate(cmd.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if !u.IsActive {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	pair, err := uc.jwt.Generate(u.ID, u.Email)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID, "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &dto.TokenDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         dto.UserDTO{ID: u.ID, Email: u.Email, Name: u.Name},
	}, nil
}
