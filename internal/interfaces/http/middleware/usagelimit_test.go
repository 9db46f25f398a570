package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/subscription"
	"rentora/internal/domain/user"
	"rentora/internal/shared/constants"
	"rentora/internal/shared/logger"
)

type fakeLimitsRepo struct {
	limits *subscription.Limits
	calls  int
}

func (f *fakeLimitsRepo) Create(ctx context.Context, l *subscription.Limits) error { return nil }
func (f *fakeLimitsRepo) Update(ctx context.Context, l *subscription.Limits) error { return nil }
func (f *fakeLimitsRepo) GetByTenant(ctx context.Context, tenantID uint) (*subscription.Limits, error) {
	f.calls++
	return f.limits, nil
}

func limitGateRequest(t *testing.T, repo *fakeLimitsRepo, principal *user.Principal) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handlerHit := false
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if principal != nil {
			c.Set(constants.ContextKeyPrincipal, *principal)
		}
	})

	m := NewUsageLimitMiddleware(repo, logger.NewLogger())
	engine.POST("/vehicles", m.CheckVehicleLimit(), func(c *gin.Context) {
		handlerHit = true
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/vehicles", nil)
	engine.ServeHTTP(w, req)
	return w, handlerHit
}

func tenantAdmin(tenantID uint) *user.Principal {
	return &user.Principal{UserID: 1, Email: "admin@rentcar.com", Role: user.RoleAdmin, TenantID: &tenantID}
}

func TestUsageLimitBlocksAtCap(t *testing.T) {
	max := 3
	repo := &fakeLimitsRepo{limits: &subscription.Limits{
		TenantID: 1, CurrentVehicles: 3, MaxVehicles: &max,
	}}

	w, handlerHit := limitGateRequest(t, repo, tenantAdmin(1))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerHit)
	assert.Contains(t, w.Body.String(), "limit_reached")
	assert.Contains(t, w.Body.String(), "límite de vehículos")
}

func TestUsageLimitAllowsUnderCap(t *testing.T) {
	max := 3
	repo := &fakeLimitsRepo{limits: &subscription.Limits{
		TenantID: 1, CurrentVehicles: 2, MaxVehicles: &max,
	}}

	w, handlerHit := limitGateRequest(t, repo, tenantAdmin(1))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerHit)
}

func TestUsageLimitMissingRowIsUnlimited(t *testing.T) {
	repo := &fakeLimitsRepo{limits: nil}

	w, handlerHit := limitGateRequest(t, repo, tenantAdmin(1))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerHit)
}

func TestUsageLimitSuperadminBypasses(t *testing.T) {
	max := 0
	repo := &fakeLimitsRepo{limits: &subscription.Limits{TenantID: 1, MaxVehicles: &max}}
	superadmin := &user.Principal{UserID: 1, Email: "superadmin@rentcar.com", Role: user.RoleSuperadmin}

	w, handlerHit := limitGateRequest(t, repo, superadmin)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerHit)
	assert.Zero(t, repo.calls)
}

func TestUsageLimitRequiresPrincipal(t *testing.T) {
	repo := &fakeLimitsRepo{}

	w, handlerHit := limitGateRequest(t, repo, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerHit)
}
