package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

func runMaintenanceRouter(secure *echo.Group, maintenanceService services.MaintenanceServiceInterface) {
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	secure.GET("/maintenance", maintenanceCtrl.GetSchedules, middleware.RequireAction(authz.ActionView))
	secure.GET("/maintenance/:id", maintenanceCtrl.FindSchedule, middleware.RequireAction(authz.ActionView))
	secure.POST("/maintenance", maintenanceCtrl.CreateSchedule, manage)
	secure.PUT("/maintenance/:id", maintenanceCtrl.UpdateSchedule, manage)
	secure.DELETE("/maintenance/:id", maintenanceCtrl.DeleteSchedule, manage)
}
