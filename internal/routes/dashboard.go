package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

func runDashboardRouter(secure *echo.Group, dashboardService services.DashboardServiceInterface) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService)

	secure.GET("/dashboard/stats", dashboardCtrl.GetStats, middleware.RequireAction(authz.ActionView))
}
