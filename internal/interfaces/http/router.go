// Package http wires repositories, use cases, handlers and middleware
// into the gin engine that serves the REST API.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	authUsecases "rentora/internal/application/auth/usecases"
	clientUsecases "rentora/internal/application/client/usecases"
	dashboardUsecases "rentora/internal/application/dashboard/usecases"
	employeeUsecases "rentora/internal/application/employee/usecases"
	fleetUsecases "rentora/internal/application/fleet/usecases"
	inspectionUsecases "rentora/internal/application/inspection/usecases"
	rentalUsecases "rentora/internal/application/rental/usecases"
	reportUsecases "rentora/internal/application/report/usecases"
	subscriptionUsecases "rentora/internal/application/subscription/usecases"
	tenantUsecases "rentora/internal/application/tenant/usecases"
	"rentora/internal/infrastructure/auth"
	"rentora/internal/infrastructure/cache"
	"rentora/internal/infrastructure/config"
	"rentora/internal/infrastructure/email"
	"rentora/internal/infrastructure/permission"
	"rentora/internal/infrastructure/repository"
	"rentora/internal/interfaces/http/handlers"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/interfaces/http/routes"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/services/markdown"

	_ "rentora/docs"
)

// Router holds the gin engine and the route configurations.
type Router struct {
	engine *gin.Engine
	log    logger.Interface

	authRoutes      *routes.AuthRouteConfig
	adminRoutes     *routes.AdminRouteConfig
	fleetRoutes     *routes.FleetRouteConfig
	operationRoutes *routes.OperationRouteConfig
	reportRoutes    *routes.ReportRouteConfig
}

// NewRouter builds the full dependency graph on top of the shared
// database handle and, optionally, a redis client for stat caching.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	// Repositories
	tenantRepo := repository.NewTenantRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)
	membershipRepo := repository.NewMembershipRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	limitsRepo := repository.NewLimitsRepository(db, log)
	vehicleRepo := repository.NewVehicleRepository(db, log)
	catalogRepo := repository.NewCatalogRepository(db, log)
	clientRepo := repository.NewClientRepository(db, log)
	employeeRepo := repository.NewEmployeeRepository(db, log)
	inspectionRepo := repository.NewInspectionRepository(db, log)
	rentalRepo := repository.NewRentalRepository(db, log)
	statsRepo := repository.NewStatsRepository(db, log)

	// Infrastructure services
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	mailer := email.NewSender(&cfg.Email, log)
	statsCache := cache.NewStatsCache(redisClient, cache.DefaultStatsTTL, log)
	markdownSvc := markdown.NewService()

	enforcer, err := permission.NewEnforcer(db, cfg.App.RBACModelPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build enforcer: %w", err)
	}
	if err := permission.InitPolicies(enforcer); err != nil {
		return nil, fmt.Errorf("failed to seed policies: %w", err)
	}

	// Use cases
	loginUC := authUsecases.NewLoginUseCase(userRepo, hasher, jwtSvc, log)
	refreshUC := authUsecases.NewRefreshTokenUseCase(userRepo, jwtSvc, log)
	registerUC := authUsecases.NewRegisterTenantUseCase(tenantRepo, userRepo, membershipRepo, limitsRepo, catalogRepo, hasher, mailer, log)
	resolverUC := authUsecases.NewResolvePrincipalUseCase(userRepo, membershipRepo, tenantRepo, cfg.App.SuperadminEmail, log)

	listTenantsUC := tenantUsecases.NewListTenantsUseCase(tenantRepo, log)
	getTenantUC := tenantUsecases.NewGetTenantUseCase(tenantRepo, log)
	updateTenantUC := tenantUsecases.NewUpdateTenantUseCase(tenantRepo, log)
	deleteTenantUC := tenantUsecases.NewDeleteTenantUseCase(tenantRepo, log)
	inviteUserUC := tenantUsecases.NewInviteUserUseCase(userRepo, membershipRepo, hasher, log)
	listMembersUC := tenantUsecases.NewListMembersUseCase(membershipRepo, userRepo, log)
	changeRoleUC := tenantUsecases.NewChangeMemberRoleUseCase(membershipRepo, log)

	createPlanUC := subscriptionUsecases.NewCreatePlanUseCase(planRepo, log)
	updatePlanUC := subscriptionUsecases.NewUpdatePlanUseCase(planRepo, log)
	listPlansUC := subscriptionUsecases.NewListPlansUseCase(planRepo, log)
	assignPlanUC := subscriptionUsecases.NewAssignPlanUseCase(planRepo, subscriptionRepo, limitsRepo, log)
	getSubscriptionUC := subscriptionUsecases.NewGetSubscriptionUseCase(subscriptionRepo, planRepo, log)
	getUsageUC := subscriptionUsecases.NewGetUsageUseCase(limitsRepo, log)

	createVehicleUC := fleetUsecases.NewCreateVehicleUseCase(vehicleRepo, limitsRepo, log)
	updateVehicleUC := fleetUsecases.NewUpdateVehicleUseCase(vehicleRepo, log)
	listVehiclesUC := fleetUsecases.NewListVehiclesUseCase(vehicleRepo, log)
	getVehicleUC := fleetUsecases.NewGetVehicleUseCase(vehicleRepo, log)
	deleteVehicleUC := fleetUsecases.NewDeleteVehicleUseCase(vehicleRepo, log)
	manageCatalogUC := fleetUsecases.NewManageCatalogUseCase(catalogRepo, log)

	createClientUC := clientUsecases.NewCreateClientUseCase(clientRepo, limitsRepo, log)
	updateClientUC := clientUsecases.NewUpdateClientUseCase(clientRepo, log)
	listClientsUC := clientUsecases.NewListClientsUseCase(clientRepo, log)
	getClientUC := clientUsecases.NewGetClientUseCase(clientRepo, log)
	deleteClientUC := clientUsecases.NewDeleteClientUseCase(clientRepo, log)

	createEmployeeUC := employeeUsecases.NewCreateEmployeeUseCase(employeeRepo, limitsRepo, log)
	updateEmployeeUC := employeeUsecases.NewUpdateEmployeeUseCase(employeeRepo, log)
	listEmployeesUC := employeeUsecases.NewListEmployeesUseCase(employeeRepo, log)
	getEmployeeUC := employeeUsecases.NewGetEmployeeUseCase(employeeRepo, log)
	deleteEmployeeUC := employeeUsecases.NewDeleteEmployeeUseCase(employeeRepo, log)

	createInspectionUC := inspectionUsecases.NewCreateInspectionUseCase(inspectionRepo, vehicleRepo, clientRepo, employeeRepo, log)
	listInspectionsUC := inspectionUsecases.NewListInspectionsUseCase(inspectionRepo, log)
	getInspectionUC := inspectionUsecases.NewGetInspectionUseCase(inspectionRepo, log)
	deleteInspectionUC := inspectionUsecases.NewDeleteInspectionUseCase(inspectionRepo, log)

	createRentalUC := rentalUsecases.NewCreateRentalUseCase(rentalRepo, vehicleRepo, clientRepo, employeeRepo, inspectionRepo, log)
	returnRentalUC := rentalUsecases.NewReturnRentalUseCase(rentalRepo, log)
	listRentalsUC := rentalUsecases.NewListRentalsUseCase(rentalRepo, log)
	getRentalUC := rentalUsecases.NewGetRentalUseCase(rentalRepo, log)

	generateReportUC := reportUsecases.NewGenerateRentalReportUseCase(rentalRepo, vehicleRepo, clientRepo, employeeRepo, log)
	exportReportUC := reportUsecases.NewExportRentalReportCSVUseCase(generateReportUC, log)
	printReportUC := reportUsecases.NewPrintRentalReportUseCase(generateReportUC, markdownSvc, log)

	tenantStatsUC := dashboardUsecases.NewGetTenantStatsUseCase(statsRepo, statsCache, log)
	financialStatsUC := dashboardUsecases.NewGetFinancialStatsUseCase(statsRepo, statsCache, log)
	adminStatsUC := dashboardUsecases.NewGetAdminStatsUseCase(statsRepo, statsCache, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(loginUC, refreshUC, registerUC, resolverUC)
	tenantHandler := handlers.NewTenantHandler(listTenantsUC, getTenantUC, updateTenantUC, deleteTenantUC, inviteUserUC, listMembersUC, changeRoleUC)
	planHandler := handlers.NewPlanHandler(createPlanUC, updatePlanUC, listPlansUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(assignPlanUC, getSubscriptionUC, getUsageUC)
	vehicleHandler := handlers.NewVehicleHandler(createVehicleUC, updateVehicleUC, listVehiclesUC, getVehicleUC, deleteVehicleUC)
	catalogHandler := handlers.NewCatalogHandler(manageCatalogUC)
	clientHandler := handlers.NewClientHandler(createClientUC, updateClientUC, listClientsUC, getClientUC, deleteClientUC)
	employeeHandler := handlers.NewEmployeeHandler(createEmployeeUC, updateEmployeeUC, listEmployeesUC, getEmployeeUC, deleteEmployeeUC)
	inspectionHandler := handlers.NewInspectionHandler(createInspectionUC, listInspectionsUC, getInspectionUC, deleteInspectionUC)
	rentalHandler := handlers.NewRentalHandler(createRentalUC, returnRentalUC, listRentalsUC, getRentalUC)
	reportHandler := handlers.NewReportHandler(generateReportUC, exportReportUC, printReportUC)
	dashboardHandler := handlers.NewDashboardHandler(tenantStatsUC, financialStatsUC, adminStatsUC)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)
	principalMiddleware := middleware.NewPrincipalMiddleware(resolverUC, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)
	usageLimitMiddleware := middleware.NewUsageLimitMiddleware(limitsRepo, log)

	return &Router{
		engine: engine,
		log:    log,
		authRoutes: &routes.AuthRouteConfig{
			AuthHandler:         authHandler,
			AuthMiddleware:      authMiddleware,
			PrincipalMiddleware: principalMiddleware,
		},
		adminRoutes: &routes.AdminRouteConfig{
			TenantHandler:        tenantHandler,
			PlanHandler:          planHandler,
			SubscriptionHandler:  subscriptionHandler,
			DashboardHandler:     dashboardHandler,
			AuthMiddleware:       authMiddleware,
			PrincipalMiddleware:  principalMiddleware,
			PermissionMiddleware: permissionMiddleware,
		},
		fleetRoutes: &routes.FleetRouteConfig{
			VehicleHandler:       vehicleHandler,
			CatalogHandler:       catalogHandler,
			AuthMiddleware:       authMiddleware,
			PrincipalMiddleware:  principalMiddleware,
			PermissionMiddleware: permissionMiddleware,
			UsageLimitMiddleware: usageLimitMiddleware,
		},
		operationRoutes: &routes.OperationRouteConfig{
			ClientHandler:        clientHandler,
			EmployeeHandler:      employeeHandler,
			InspectionHandler:    inspectionHandler,
			RentalHandler:        rentalHandler,
			AuthMiddleware:       authMiddleware,
			PrincipalMiddleware:  principalMiddleware,
			PermissionMiddleware: permissionMiddleware,
			UsageLimitMiddleware: usageLimitMiddleware,
		},
		reportRoutes: &routes.ReportRouteConfig{
			ReportHandler:        reportHandler,
			DashboardHandler:     dashboardHandler,
			AuthMiddleware:       authMiddleware,
			PrincipalMiddleware:  principalMiddleware,
			PermissionMiddleware: permissionMiddleware,
		},
	}, nil
}

// SetupRoutes configures global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS([]string{"*"}))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, r.authRoutes)
	routes.SetupAdminRoutes(r.engine, r.adminRoutes)
	routes.SetupFleetRoutes(r.engine, r.fleetRoutes)
	routes.SetupOperationRoutes(r.engine, r.operationRoutes)
	routes.SetupReportRoutes(r.engine, r.reportRoutes)
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
