package usecases

import (
	"context"

	"rentora/internal/application/tenant/dto"
	"rentora/internal/domain/user"
	"rentora/internal/shared/logger"
)

type ListMembersUseCase struct {
	membershipRepo user.MembershipRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewListMembersUseCase(membershipRepo user.MembershipRepository, userRepo user.Repository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{membershipRepo: membershipRepo, userRepo: userRepo, logger: logger}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, tenantID uint) ([]*dto.MemberDTO, error) {
	memberships, err := uc.membershipRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MemberDTO, 0, len(memberships))
	for _, m := range memberships {
		u, err := uc.userRepo.GetByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, &dto.MemberDTO{
			MembershipID: m.ID,
			UserID:       u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         string(m.Role),
			IsActive:     m.IsActive,
		})
	}
	return out, nil
}
