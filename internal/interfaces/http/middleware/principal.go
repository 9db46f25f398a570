package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authusecases "rentora/internal/application/auth/usecases"
	"rentora/internal/domain/user"
	"rentora/internal/shared/constants"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type PrincipalMiddleware struct {
	resolver *authusecases.ResolvePrincipalUseCase
	logger   logger.Interface
}

func NewPrincipalMiddleware(resolver *authusecases.ResolvePrincipalUseCase, logger logger.Interface) *PrincipalMiddleware {
	return &PrincipalMiddleware{resolver: resolver, logger: logger}
}

// Resolve turns the authenticated user ID into a Principal and stores it
// in the gin context. Resolution is fail-closed: a user without company
// access gets a 403 here, before any handler runs.
func (m *PrincipalMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		principal, err := m.resolver.Execute(c.Request.Context(), userID.(uint))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, *principal)
		c.Next()
	}
}

// PrincipalFromContext retrieves the resolved principal set by Resolve.
func PrincipalFromContext(c *gin.Context) (user.Principal, bool) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return user.Principal{}, false
	}
	principal, ok := value.(user.Principal)
	return principal, ok
}
