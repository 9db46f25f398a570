package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/domain/subscription"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

// UsageLimitMiddleware gates the create endpoints on the tenant's plan
// caps before the handler runs. The create use cases re-check under the
// same rules inside their transaction; this gate rejects early with the
// limit message. The superadmin bypasses caps entirely.
type UsageLimitMiddleware struct {
	limitsRepo subscription.LimitsRepository
	logger     logger.Interface
}

func NewUsageLimitMiddleware(limitsRepo subscription.LimitsRepository, logger logger.Interface) *UsageLimitMiddleware {
	return &UsageLimitMiddleware{limitsRepo: limitsRepo, logger: logger}
}

func (m *UsageLimitMiddleware) check(resource string, allows func(*subscription.Limits) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}
		if principal.IsSuperadmin() {
			c.Next()
			return
		}

		tenantID, _ := principal.Scope()
		limits, err := m.limitsRepo.GetByTenant(c.Request.Context(), tenantID)
		if err != nil {
			m.logger.Errorw("failed to load tenant limits",
				"tenant_id", tenantID,
				"resource", resource,
				"error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to check plan limits")
			c.Abort()
			return
		}

		if !allows(limits) {
			m.logger.Warnw("plan limit reached",
				"tenant_id", tenantID,
				"resource", resource)
			utils.ErrorResponseWithError(c, errors.NewLimitReachedError(message))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *UsageLimitMiddleware) CheckVehicleLimit() gin.HandlerFunc {
	return m.check("vehicles", func(l *subscription.Limits) bool { return l.CanAddVehicle() },
		"límite de vehículos del plan alcanzado")
}

func (m *UsageLimitMiddleware) CheckClientLimit() gin.HandlerFunc {
	return m.check("clients", func(l *subscription.Limits) bool { return l.CanAddClient() },
		"límite de clientes del plan alcanzado")
}

func (m *UsageLimitMiddleware) CheckEmployeeLimit() gin.HandlerFunc {
	return m.check("employees", func(l *subscription.Limits) bool { return l.CanAddEmployee() },
		"límite de empleados del plan alcanzado")
}
