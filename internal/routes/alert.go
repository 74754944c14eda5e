package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

func runAlertRouter(secure *echo.Group, alertService services.AlertServiceInterface) {
	alertCtrl := controllers.NewAlertController(alertService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	secure.GET("/alerts", alertCtrl.GetAlerts, middleware.RequireAction(authz.ActionView))
	secure.GET("/alerts/:id", alertCtrl.FindAlert, middleware.RequireAction(authz.ActionView))
	secure.PUT("/alerts/:id", alertCtrl.UpdateAlert, manage)
}
