package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-info/internal/repositories"
	"parc-info/internal/services"
	"parc-info/pkg/config"
	"parc-info/pkg/middleware"
	"parc-info/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	tokens service.SessionTokenService,
	cfg *config.Config,
	logger *zap.Logger,
) {
	api := e.Group("/api")

	// --- repositories ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	sessionRepo := repositories.NewSessionRepository(redisClient)
	employeeRepo := repositories.NewEmployeeRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	ticketRepo := repositories.NewTicketRepository(dbConn)
	inventoryRepo := repositories.NewInventoryRepository(dbConn)
	licenseRepo := repositories.NewLicenseRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	alertRepo := repositories.NewAlertRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)

	// --- services ---
	authService := services.NewAuthService(userRepo, sessionRepo, tokens, logger)
	userService := services.NewUserService(userRepo, sessionRepo, logger)
	employeeService := services.NewEmployeeService(employeeRepo)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	ticketService := services.NewTicketService(ticketRepo, logger)
	inventoryService := services.NewInventoryService(inventoryRepo, equipmentRepo)
	licenseService := services.NewLicenseService(licenseRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo)
	alertService := services.NewAlertService(alertRepo)
	dashboardService := services.NewDashboardService(dashboardRepo, redisClient, cfg.Dashboard.CacheTTL, logger)
	settingsService := services.NewSettingsService(equipmentService, employeeService, licenseService, inventoryService, logger)

	// --- middleware ---
	authMW := middleware.AuthMiddleware(cfg.Session.CookieName, tokens, sessionRepo, userRepo)
	secure := api.Group("", authMW)

	runAuthRouter(api, secure, authService, cfg.Session, logger)
	runUserRouter(secure, userService)
	runEmployeeRouter(secure, employeeService)
	runEquipmentRouter(secure, equipmentService)
	runTicketRouter(secure, ticketService)
	runInventoryRouter(secure, inventoryService)
	runLicenseRouter(secure, licenseService)
	runMaintenanceRouter(secure, maintenanceService)
	runAlertRouter(secure, alertService)
	runDashboardRouter(secure, dashboardService)
	runSettingsRouter(secure, settingsService)

	logger.Info("routes enregistrées")
}
