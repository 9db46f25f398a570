package usecases

import (
	"context"

	"rentora/internal/domain/user"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type ChangeMemberRoleCommand struct {
	TenantID     uint
	MembershipID uint
	Role         string
	Deactivate   bool
}

type ChangeMemberRoleUseCase struct {
	membershipRepo user.MembershipRepository
	logger         logger.Interface
}

func NewChangeMemberRoleUseCase(membershipRepo user.MembershipRepository, logger logger.Interface) *ChangeMemberRoleUseCase {
	return &ChangeMemberRoleUseCase{membershipRepo: membershipRepo, logger: logger}
}

func (uc *ChangeMemberRoleUseCase) Execute(ctx context.Context, cmd ChangeMemberRoleCommand) error {
	memberships, err := uc.membershipRepo.ListByTenant(ctx, cmd.TenantID)
	if err != nil {
		return err
	}

	var target *user.Membership
	for _, m := range memberships {
		if m.ID == cmd.MembershipID {
			target = m
			break
		}
	}
	if target == nil {
		return errors.NewNotFoundError("membership not found")
	}

	if cmd.Deactivate {
		target.Deactivate()
	} else if err := target.ChangeRole(user.Role(cmd.Role)); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.membershipRepo.Update(ctx, target); err != nil {
		return err
	}

	uc.logger.Infow("membership updated", "tenant_id", cmd.TenantID, "membership_id", cmd.MembershipID, "role", target.Role, "active", target.IsActive)
	return nil
}
