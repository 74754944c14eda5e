package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

func runLicenseRouter(secure *echo.Group, licenseService services.LicenseServiceInterface) {
	licenseCtrl := controllers.NewLicenseController(licenseService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	secure.GET("/licenses", licenseCtrl.GetLicenses, middleware.RequireAction(authz.ActionView))
	secure.GET("/licenses/expiring/:days", licenseCtrl.GetExpiringLicenses, middleware.RequireAction(authz.ActionView))
	secure.GET("/licenses/:id", licenseCtrl.FindLicense, middleware.RequireAction(authz.ActionView))
	secure.POST("/licenses", licenseCtrl.CreateLicense, manage)
	secure.PUT("/licenses/:id", licenseCtrl.UpdateLicense, manage)
	secure.DELETE("/licenses/:id", licenseCtrl.DeleteLicense, manage)
}
