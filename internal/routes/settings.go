package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

// Export et import de collections: réservés à l'admin et au technicien.
func runSettingsRouter(secure *echo.Group, settingsService services.SettingsServiceInterface) {
	settingsCtrl := controllers.NewSettingsController(settingsService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	settingsGroup := secure.Group("/settings", manage)
	{
		settingsGroup.GET("/export/:type", settingsCtrl.Export)
		settingsGroup.GET("/template/:type", settingsCtrl.Template)
		settingsGroup.POST("/import", settingsCtrl.Import)
	}
}
