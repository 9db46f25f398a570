package routes

import (
	"github.com/gin-gonic/gin"

	"rentora/internal/interfaces/http/handlers"
	"rentora/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler         *handlers.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	PrincipalMiddleware *middleware.PrincipalMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/v1/auth")
	{
		// Public endpoints
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)

		// Requires a valid access token
		auth.GET("/me",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PrincipalMiddleware.Resolve(),
			cfg.AuthHandler.Me,
		)
	}
}
