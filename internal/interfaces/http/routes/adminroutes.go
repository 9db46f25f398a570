package routes

import (
	"github.com/gin-gonic/gin"

	"rentora/internal/infrastructure/permission"
	"rentora/internal/interfaces/http/handlers"
	"rentora/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the platform administration
// routes: tenants, plans, subscriptions and the cross-tenant dashboard.
type AdminRouteConfig struct {
	TenantHandler        *handlers.TenantHandler
	PlanHandler          *handlers.PlanHandler
	SubscriptionHandler  *handlers.SubscriptionHandler
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures tenant, plan and subscription routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	authed := func(group *gin.RouterGroup) {
		group.Use(cfg.AuthMiddleware.RequireAuth())
		group.Use(cfg.PrincipalMiddleware.Resolve())
	}

	tenants := engine.Group("/api/v1/tenants")
	authed(tenants)
	{
		tenants.GET("",
			cfg.PermissionMiddleware.Require(permission.ResourceTenants, permission.ActionRead),
			cfg.TenantHandler.List,
		)
		tenants.GET("/:id",
			cfg.PermissionMiddleware.Require(permission.ResourceTenants, permission.ActionRead),
			cfg.TenantHandler.Get,
		)
		tenants.PUT("/:id",
			cfg.PermissionMiddleware.Require(permission.ResourceTenants, permission.ActionWrite),
			cfg.TenantHandler.Update,
		)
		tenants.DELETE("/:id",
			cfg.PermissionMiddleware.Require(permission.ResourceTenants, permission.ActionWrite),
			cfg.TenantHandler.Delete,
		)

		// Staff account management inside a tenant. Admins hold the
		// users permission for their own tenant; the handlers enforce
		// the scope.
		tenants.GET("/:id/users",
			cfg.PermissionMiddleware.Require(permission.ResourceUsers, permission.ActionRead),
			cfg.TenantHandler.ListMembers,
		)
		tenants.POST("/:id/users",
			cfg.PermissionMiddleware.Require(permission.ResourceUsers, permission.ActionWrite),
			cfg.TenantHandler.InviteUser,
		)
		tenants.PUT("/:id/users/:memberId/role",
			cfg.PermissionMiddleware.Require(permission.ResourceUsers, permission.ActionWrite),
			cfg.TenantHandler.ChangeMemberRole,
		)
	}

	plans := engine.Group("/api/v1/plans")
	authed(plans)
	{
		plans.GET("",
			cfg.PermissionMiddleware.Require(permission.ResourcePlans, permission.ActionRead),
			cfg.PlanHandler.List,
		)
		plans.POST("",
			cfg.PermissionMiddleware.Require(permission.ResourcePlans, permission.ActionWrite),
			cfg.PlanHandler.Create,
		)
		plans.PUT("/:id",
			cfg.PermissionMiddleware.Require(permission.ResourcePlans, permission.ActionWrite),
			cfg.PlanHandler.Update,
		)
	}

	subscriptions := engine.Group("/api/v1/subscriptions")
	authed(subscriptions)
	{
		subscriptions.POST("/assign",
			cfg.PermissionMiddleware.Require(permission.ResourceSubscriptions, permission.ActionWrite),
			cfg.SubscriptionHandler.Assign,
		)
		subscriptions.GET("/current",
			cfg.PermissionMiddleware.Require(permission.ResourceSubscriptions, permission.ActionRead),
			cfg.SubscriptionHandler.Get,
		)
		subscriptions.GET("/usage",
			cfg.PermissionMiddleware.Require(permission.ResourceSubscriptions, permission.ActionRead),
			cfg.SubscriptionHandler.Usage,
		)
	}

	admin := engine.Group("/api/v1/dashboard")
	authed(admin)
	{
		admin.GET("/admin",
			cfg.PermissionMiddleware.RequireSuperadmin(),
			cfg.DashboardHandler.AdminStats,
		)
	}
}
