package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/infrastructure/permission"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{enforcer: enforcer, logger: logger}
}

// Require checks the principal's role against the casbin policy for the
// given resource/action.
func (m *PermissionMiddleware) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(string(principal.Role), resource, action)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", principal.UserID,
				"role", principal.Role,
				"resource", resource,
				"action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSuperadmin guards the cross-tenant admin surface.
func (m *PermissionMiddleware) RequireSuperadmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}
		if !principal.IsSuperadmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "superadmin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
