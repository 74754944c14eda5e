package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

// La gestion des comptes est la seule zone fermée au technicien.
func runUserRouter(secure *echo.Group, userService services.UserServiceInterface) {
	userCtrl := controllers.NewUserController(userService)

	secure.GET("/users", userCtrl.GetUsers, middleware.RequireAction(authz.ActionView))
	secure.GET("/users/:id", userCtrl.FindUser, middleware.RequireAction(authz.ActionView))
	secure.POST("/users", userCtrl.CreateUser, middleware.RequireAction(authz.ActionCreateUser))
	secure.PUT("/users/:id", userCtrl.UpdateUser, middleware.RequireAction(authz.ActionEditUser))
	secure.DELETE("/users/:id", userCtrl.DeleteUser, middleware.RequireAction(authz.ActionDeleteUser))
}
