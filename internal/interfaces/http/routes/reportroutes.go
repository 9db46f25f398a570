package routes

import (
	"github.com/gin-gonic/gin"

	"rentora/internal/infrastructure/permission"
	"rentora/internal/interfaces/http/handlers"
	"rentora/internal/interfaces/http/middleware"
)

// ReportRouteConfig holds dependencies for report and tenant dashboard
// routes.
type ReportRouteConfig struct {
	ReportHandler        *handlers.ReportHandler
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupReportRoutes configures report generation, export and dashboard
// statistic routes.
func SetupReportRoutes(engine *gin.Engine, cfg *ReportRouteConfig) {
	reports := engine.Group("/api/v1/reports")
	reports.Use(cfg.AuthMiddleware.RequireAuth())
	reports.Use(cfg.PrincipalMiddleware.Resolve())
	reports.Use(cfg.PermissionMiddleware.Require(permission.ResourceReports, permission.ActionRead))
	{
		reports.POST("/rentals", cfg.ReportHandler.Generate)
		reports.GET("/rentals/export", cfg.ReportHandler.ExportCSV)
		reports.GET("/rentals/print", cfg.ReportHandler.Print)
	}

	dashboard := engine.Group("/api/v1/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	dashboard.Use(cfg.PrincipalMiddleware.Resolve())
	dashboard.Use(cfg.PermissionMiddleware.Require(permission.ResourceDashboard, permission.ActionRead))
	{
		dashboard.GET("/stats", cfg.DashboardHandler.Stats)
		dashboard.GET("/financial", cfg.DashboardHandler.Financial)
	}
}
