// Package handlers exposes the application usecases over gin. Handlers
// bind and validate the request shape; everything else is delegated.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/domain/user"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/utils"
)

// requestScope extracts the resolved principal and the tenant filter for
// the request. A superadmin is unscoped (tenantID 0) but may narrow to
// one tenant with the tenant_id query parameter; everyone else is pinned
// to their own tenant.
func requestScope(c *gin.Context) (user.Principal, uint, bool) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return user.Principal{}, 0, false
	}

	tenantID, _ := principal.Scope()
	if principal.IsSuperadmin() {
		if raw := c.Query("tenant_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				utils.ErrorResponse(c, http.StatusBadRequest, "invalid tenant_id")
				return user.Principal{}, 0, false
			}
			tenantID = uint(parsed)
		}
	}
	return principal, tenantID, true
}

// writeTenant returns the tenant ID a mutation should target. Non-super
// principals always write into their own tenant; the superadmin must name
// one explicitly.
func writeTenant(c *gin.Context, principal user.Principal, bodyTenantID uint) (uint, bool) {
	if !principal.IsSuperadmin() {
		tenantID, _ := principal.Scope()
		return tenantID, true
	}
	if bodyTenantID != 0 {
		return bodyTenantID, true
	}
	utils.ErrorResponse(c, http.StatusBadRequest, "tenant_id is required")
	return 0, false
}
