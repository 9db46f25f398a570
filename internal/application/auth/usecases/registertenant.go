package usecases

import (
	"context"
	"fmt"
	"strings"

	"rentora/internal/application/auth/dto"
	"rentora/internal/domain/fleet"
	"rentora/internal/domain/subscription"
	"rentora/internal/domain/tenant"
	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/infrastructure/email"
	"rentora/internal/infrastructure/seeds"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/id"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/validation"
)

type RegisterTenantCommand struct {
	CompanyName string
	AdminName   string
	Email       string
	Password    string
	Phone       string
}

// RegisterTenantUseCase is the self-service signup: it creates the
// company, its admin account, an empty limits row and the starter
// catalogs, then sends the welcome mail.
type RegisterTenantUseCase struct {
	tenantRepo     tenant.Repository
	userRepo       user.Repository
	membershipRepo user.MembershipRepository
	limitsRepo     subscription.LimitsRepository
	catalogRepo    fleet.CatalogRepository
	hasher         *auth.PasswordHasher
	mailer         *email.Sender
	logger         logger.Interface
}

func NewRegisterTenantUseCase(
	tenantRepo tenant.Repository,
	userRepo user.Repository,
	membershipRepo user.MembershipRepository,
	limitsRepo subscription.LimitsRepository,
	catalogRepo fleet.CatalogRepository,
	hasher *auth.PasswordHasher,
	mailer *email.Sender,
	logger logger.Interface,
) *RegisterTenantUseCase {
	return &RegisterTenantUseCase{
		tenantRepo:     tenantRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		limitsRepo:     limitsRepo,
		catalogRepo:    catalogRepo,
		hasher:         hasher,
		mailer:         mailer,
		logger:         logger,
	}
}

func (uc *RegisterTenantUseCase) Execute(ctx context.Context, cmd RegisterTenantCommand) (*dto.RegistrationDTO, error) {
	if !validation.ValidateEmail(cmd.Email) {
		return nil, errors.NewValidationError(validation.Message("email", cmd.Email))
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("la contraseña debe tener al menos 8 caracteres")
	}

	slug, err := uc.availableSlug(ctx, cmd.CompanyName)
	if err != nil {
		return nil, err
	}

	t, err := tenant.NewTenant(cmd.CompanyName, slug, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	t.Phone = cmd.Phone
	if err := uc.tenantRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to process password")
	}
	u, err := user.NewUser(cmd.Email, cmd.AdminName, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	membership, err := user.NewMembership(t.ID, u.ID, user.RoleAdmin)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	// Empty limits row: unlimited until a plan is assigned.
	if err := uc.limitsRepo.Create(ctx, &subscription.Limits{TenantID: t.ID}); err != nil {
		return nil, err
	}

	if err := seeds.SeedTenantCatalogs(ctx, uc.catalogRepo, t.ID, uc.logger); err != nil {
		uc.logger.Errorw("failed to seed tenant catalogs", "tenant_id", t.ID, "error", err)
	}

	if uc.mailer != nil {
		if err := uc.mailer.SendWelcome(u.Email, t.Name); err != nil {
			uc.logger.Warnw("welcome email failed", "tenant_id", t.ID, "error", err)
		}
	}

	uc.logger.Infow("tenant registered", "tenant_id", t.ID, "slug", t.Slug, "admin_user_id", u.ID)
	return &dto.RegistrationDTO{TenantID: t.ID, TenantSlug: t.Slug, UserID: u.ID}, nil
}

// availableSlug slugifies the company name and appends a short random
// suffix when taken.
func (uc *RegisterTenantUseCase) availableSlug(ctx context.Context, name string) (string, error) {
	slug := tenant.Slugify(name)
	if slug == "" {
		return "", errors.NewValidationError("el nombre de la empresa es requerido")
	}

	taken, err := uc.tenantRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !taken {
		return slug, nil
	}

	suffix, err := id.Generate(6)
	if err != nil {
		return "", errors.NewInternalError("failed to generate slug suffix")
	}
	// Base62 mixes cases; slugs are lowercase only.
	return slug + "-" + strings.ToLower(suffix), nil
}
