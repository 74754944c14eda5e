package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

func runEquipmentRouter(secure *echo.Group, equipmentService services.EquipmentServiceInterface) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	secure.GET("/equipment", equipmentCtrl.GetEquipments, middleware.RequireAction(authz.ActionView))
	secure.GET("/equipment/:id", equipmentCtrl.FindEquipment, middleware.RequireAction(authz.ActionView))
	secure.GET("/equipment/:id/history", equipmentCtrl.GetHistory, middleware.RequireAction(authz.ActionView))
	secure.POST("/equipment", equipmentCtrl.CreateEquipment, manage)
	secure.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment, manage)
	secure.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment, manage)
}
