package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

func runInventoryRouter(secure *echo.Group, inventoryService services.InventoryServiceInterface) {
	inventoryCtrl := controllers.NewInventoryController(inventoryService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	secure.GET("/inventory", inventoryCtrl.GetInventories, middleware.RequireAction(authz.ActionView))
	secure.GET("/inventory/:id", inventoryCtrl.FindInventory, middleware.RequireAction(authz.ActionView))
	secure.POST("/inventory", inventoryCtrl.CreateInventory, manage)
	secure.PUT("/inventory/:id", inventoryCtrl.UpdateInventory, manage)
	secure.DELETE("/inventory/:id", inventoryCtrl.DeleteInventory, manage)
}
