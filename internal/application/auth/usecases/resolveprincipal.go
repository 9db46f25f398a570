package usecases

import (
	"context"
	"strings"

	"rentora/internal/application/auth/dto"
	"rentora/internal/domain/tenant"
	"rentora/internal/domain/user"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// ResolvePrincipalUseCase turns an authenticated user ID into a Principal.
// The configured operator email becomes the superadmin; everyone else gets
// the role of their active membership. A user without one is rejected
// outright rather than demoted to a default role.
type ResolvePrincipalUseCase struct {
	userRepo        user.Repository
	membershipRepo  user.MembershipRepository
	tenantRepo      tenant.Repository
	superadminEmail string
	logger          logger.Interface
}

func NewResolvePrincipalUseCase(
	userRepo user.Repository,
	membershipRepo user.MembershipRepository,
	tenantRepo tenant.Repository,
	superadminEmail string,
	logger logger.Interface,
) *ResolvePrincipalUseCase {
	return &ResolvePrincipalUseCase{
		userRepo:        userRepo,
		membershipRepo:  membershipRepo,
		tenantRepo:      tenantRepo,
		superadminEmail: strings.ToLower(superadminEmail),
		logger:          logger,
	}
}

func (uc *ResolvePrincipalUseCase) Execute(ctx context.Context, userID uint) (*user.Principal, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if !u.IsActive {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if strings.ToLower(u.Email) == uc.superadminEmail {
		return &user.Principal{UserID: u.ID, Email: u.Email, Role: user.RoleSuperadmin}, nil
	}

	membership, err := uc.membershipRepo.GetActiveByUser(ctx, u.ID)
	if err != nil {
		uc.logger.Errorw("failed to resolve membership", "user_id", u.ID, "error", err)
		return nil, errors.NewInternalError("failed to resolve access")
	}
	if membership == nil {
		uc.logger.Warnw("user has no active membership", "user_id", u.ID)
		return nil, errors.NewForbiddenError("no company access assigned")
	}

	tenantID := membership.TenantID
	return &user.Principal{
		UserID:   u.ID,
		Email:    u.Email,
		Role:     membership.Role,
		TenantID: &tenantID,
	}, nil
}

// Describe builds the session-bootstrap payload for a principal.
func (uc *ResolvePrincipalUseCase) Describe(ctx context.Context, p *user.Principal) (*dto.PrincipalDTO, error) {
	out := &dto.PrincipalDTO{
		UserID:     p.UserID,
		Email:      p.Email,
		Role:       string(p.Role),
		TenantID:   p.TenantID,
		IsAdmin:    p.IsAdmin(),
		CanEdit:    p.CanEdit(),
		IsReadOnly: p.IsReadOnly(),
	}
	if p.TenantID != nil {
		t, err := uc.tenantRepo.GetByID(ctx, *p.TenantID)
		if err != nil {
			return nil, err
		}
		out.TenantName = t.Name
	}
	return out, nil
}
