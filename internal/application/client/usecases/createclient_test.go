package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/client"
	"rentora/internal/domain/subscription"
	"rentora/internal/domain/user"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

const validCedula = "001-1391820-5"

type fakeClientRepo struct {
	created      []*client.Client
	cedulaExists bool
}

func (f *fakeClientRepo) Create(ctx context.Context, c *client.Client) error {
	c.ID = uint(len(f.created) + 1)
	f.created = append(f.created, c)
	return nil
}
func (f *fakeClientRepo) Update(ctx context.Context, c *client.Client) error { return nil }
func (f *fakeClientRepo) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	return nil, errors.NewNotFoundError("client not found")
}
func (f *fakeClientRepo) ExistsByCedula(ctx context.Context, tenantID uint, cedula string, excludeID uint) (bool, error) {
	return f.cedulaExists, nil
}
func (f *fakeClientRepo) List(ctx context.Context, filter client.Filter) ([]*client.Client, error) {
	return f.created, nil
}
func (f *fakeClientRepo) SoftDelete(ctx context.Context, id uint) error { return nil }

type fakeLimitsRepo struct {
	limits *subscription.Limits
}

func (f *fakeLimitsRepo) Create(ctx context.Context, l *subscription.Limits) error { return nil }
func (f *fakeLimitsRepo) Update(ctx context.Context, l *subscription.Limits) error { return nil }
func (f *fakeLimitsRepo) GetByTenant(ctx context.Context, tenantID uint) (*subscription.Limits, error) {
	return f.limits, nil
}

func adminPrincipal() user.Principal {
	tenantID := uint(1)
	return user.Principal{UserID: 5, Role: user.RoleAdmin, TenantID: &tenantID}
}

func createCommand(p user.Principal) CreateClientCommand {
	return CreateClientCommand{
		Principal:        p,
		TenantID:         1,
		Name:             "Juan Pérez",
		Cedula:           validCedula,
		CreditLimitCents: 50000,
		PersonType:       string(client.PersonNatural),
	}
}

func TestCreateClientRegisters(t *testing.T) {
	repo := &fakeClientRepo{}
	max := 10
	limits := &fakeLimitsRepo{limits: &subscription.Limits{TenantID: 1, CurrentClients: 3, MaxClients: &max}}
	uc := NewCreateClientUseCase(repo, limits, logger.NewLogger())

	result, err := uc.Execute(context.Background(), createCommand(adminPrincipal()))
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", result.Name)
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(1), repo.created[0].TenantID)
}

func TestCreateClientRejectsInvalidCedula(t *testing.T) {
	uc := NewCreateClientUseCase(&fakeClientRepo{}, &fakeLimitsRepo{}, logger.NewLogger())

	cmd := createCommand(adminPrincipal())
	cmd.Cedula = "001-1391820-4"
	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "Cédula dominicana inválida")
}

func TestCreateClientBlockedAtPlanCap(t *testing.T) {
	max := 3
	limits := &fakeLimitsRepo{limits: &subscription.Limits{TenantID: 1, CurrentClients: 3, MaxClients: &max}}
	uc := NewCreateClientUseCase(&fakeClientRepo{}, limits, logger.NewLogger())

	_, err := uc.Execute(context.Background(), createCommand(adminPrincipal()))
	require.Error(t, err)
	assert.True(t, errors.IsLimitReachedError(err))
}

func TestCreateClientSuperadminBypassesCap(t *testing.T) {
	max := 3
	repo := &fakeClientRepo{}
	limits := &fakeLimitsRepo{limits: &subscription.Limits{TenantID: 1, CurrentClients: 3, MaxClients: &max}}
	uc := NewCreateClientUseCase(repo, limits, logger.NewLogger())

	_, err := uc.Execute(context.Background(), createCommand(user.Principal{UserID: 1, Role: user.RoleSuperadmin}))
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestCreateClientMissingLimitsRowIsUnlimited(t *testing.T) {
	repo := &fakeClientRepo{}
	uc := NewCreateClientUseCase(repo, &fakeLimitsRepo{limits: nil}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), createCommand(adminPrincipal()))
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestCreateClientDuplicateCedula(t *testing.T) {
	repo := &fakeClientRepo{cedulaExists: true}
	uc := NewCreateClientUseCase(repo, &fakeLimitsRepo{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), createCommand(adminPrincipal()))
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Empty(t, repo.created)
}
