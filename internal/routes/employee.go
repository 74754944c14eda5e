package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

func runEmployeeRouter(secure *echo.Group, employeeService services.EmployeeServiceInterface) {
	employeeCtrl := controllers.NewEmployeeController(employeeService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	secure.GET("/employees", employeeCtrl.GetEmployees, middleware.RequireAction(authz.ActionView))
	secure.GET("/employees/:id", employeeCtrl.FindEmployee, middleware.RequireAction(authz.ActionView))
	secure.POST("/employees", employeeCtrl.CreateEmployee, manage)
	secure.PUT("/employees/:id", employeeCtrl.UpdateEmployee, manage)
	secure.DELETE("/employees/:id", employeeCtrl.DeleteEmployee, manage)
}
