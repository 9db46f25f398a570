package routes

import (
	"github.com/gin-gonic/gin"

	"rentora/internal/infrastructure/permission"
	"rentora/internal/interfaces/http/handlers"
	"rentora/internal/interfaces/http/middleware"
)

// FleetRouteConfig holds dependencies for vehicle and catalog routes.
type FleetRouteConfig struct {
	VehicleHandler       *handlers.VehicleHandler
	CatalogHandler       *handlers.CatalogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	UsageLimitMiddleware *middleware.UsageLimitMiddleware
}

// SetupFleetRoutes configures vehicle and catalog routes.
func SetupFleetRoutes(engine *gin.Engine, cfg *FleetRouteConfig) {
	vehicles := engine.Group("/api/v1/vehicles")
	vehicles.Use(cfg.AuthMiddleware.RequireAuth())
	vehicles.Use(cfg.PrincipalMiddleware.Resolve())
	{
		read := cfg.PermissionMiddleware.Require(permission.ResourceVehicles, permission.ActionRead)
		write := cfg.PermissionMiddleware.Require(permission.ResourceVehicles, permission.ActionWrite)

		vehicles.GET("", read, cfg.VehicleHandler.List)
		vehicles.GET("/:id", read, cfg.VehicleHandler.Get)
		vehicles.POST("", write, cfg.UsageLimitMiddleware.CheckVehicleLimit(), cfg.VehicleHandler.Create)
		vehicles.PUT("/:id", write, cfg.VehicleHandler.Update)
		vehicles.DELETE("/:id", write, cfg.VehicleHandler.Delete)
	}

	catalogs := engine.Group("/api/v1/catalogs")
	catalogs.Use(cfg.AuthMiddleware.RequireAuth())
	catalogs.Use(cfg.PrincipalMiddleware.Resolve())
	{
		read := cfg.PermissionMiddleware.Require(permission.ResourceCatalogs, permission.ActionRead)
		write := cfg.PermissionMiddleware.Require(permission.ResourceCatalogs, permission.ActionWrite)

		catalogs.GET("/:kind", read, cfg.CatalogHandler.List)
		catalogs.POST("/:kind", write, cfg.CatalogHandler.Create)
		catalogs.DELETE("/:kind/:id", write, cfg.CatalogHandler.Delete)
	}
}
