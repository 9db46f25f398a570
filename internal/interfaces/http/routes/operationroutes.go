package routes

import (
	"github.com/gin-gonic/gin"

	"rentora/internal/infrastructure/permission"
	"rentora/internal/interfaces/http/handlers"
	"rentora/internal/interfaces/http/middleware"
)

// OperationRouteConfig holds dependencies for the day-to-day rental
// operation routes: clients, employees, inspections and rentals.
type OperationRouteConfig struct {
	ClientHandler        *handlers.ClientHandler
	EmployeeHandler      *handlers.EmployeeHandler
	InspectionHandler    *handlers.InspectionHandler
	RentalHandler        *handlers.RentalHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PrincipalMiddleware  *middleware.PrincipalMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	UsageLimitMiddleware *middleware.UsageLimitMiddleware
}

// SetupOperationRoutes configures client, employee, inspection and
// rental routes.
func SetupOperationRoutes(engine *gin.Engine, cfg *OperationRouteConfig) {
	authed := func(group *gin.RouterGroup) {
		group.Use(cfg.AuthMiddleware.RequireAuth())
		group.Use(cfg.PrincipalMiddleware.Resolve())
	}

	clients := engine.Group("/api/v1/clients")
	authed(clients)
	{
		read := cfg.PermissionMiddleware.Require(permission.ResourceClients, permission.ActionRead)
		write := cfg.PermissionMiddleware.Require(permission.ResourceClients, permission.ActionWrite)

		clients.GET("", read, cfg.ClientHandler.List)
		clients.GET("/:id", read, cfg.ClientHandler.Get)
		clients.POST("", write, cfg.UsageLimitMiddleware.CheckClientLimit(), cfg.ClientHandler.Create)
		clients.PUT("/:id", write, cfg.ClientHandler.Update)
		clients.DELETE("/:id", write, cfg.ClientHandler.Delete)
	}

	employees := engine.Group("/api/v1/employees")
	authed(employees)
	{
		read := cfg.PermissionMiddleware.Require(permission.ResourceEmployees, permission.ActionRead)
		write := cfg.PermissionMiddleware.Require(permission.ResourceEmployees, permission.ActionWrite)

		employees.GET("", read, cfg.EmployeeHandler.List)
		employees.GET("/:id", read, cfg.EmployeeHandler.Get)
		employees.POST("", write, cfg.UsageLimitMiddleware.CheckEmployeeLimit(), cfg.EmployeeHandler.Create)
		employees.PUT("/:id", write, cfg.EmployeeHandler.Update)
		employees.DELETE("/:id", write, cfg.EmployeeHandler.Delete)
	}

	inspections := engine.Group("/api/v1/inspections")
	authed(inspections)
	{
		read := cfg.PermissionMiddleware.Require(permission.ResourceInspections, permission.ActionRead)
		write := cfg.PermissionMiddleware.Require(permission.ResourceInspections, permission.ActionWrite)

		inspections.GET("", read, cfg.InspectionHandler.List)
		inspections.GET("/:id", read, cfg.InspectionHandler.Get)
		inspections.POST("", write, cfg.InspectionHandler.Create)
		inspections.DELETE("/:id", write, cfg.InspectionHandler.Delete)
	}

	rentals := engine.Group("/api/v1/rentals")
	authed(rentals)
	{
		read := cfg.PermissionMiddleware.Require(permission.ResourceRentals, permission.ActionRead)
		write := cfg.PermissionMiddleware.Require(permission.ResourceRentals, permission.ActionWrite)

		rentals.GET("", read, cfg.RentalHandler.List)
		rentals.GET("/:id", read, cfg.RentalHandler.Get)
		rentals.POST("", write, cfg.RentalHandler.Create)
		rentals.POST("/:id/return", write, cfg.RentalHandler.Return)
	}
}
