package routes

import (
	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/controllers"
	"parc-info/internal/services"
	"parc-info/pkg/middleware"
)

// Tout rôle peut ouvrir un ticket; la suite du cycle de vie est réservée
// à l'admin et au technicien.
func runTicketRouter(secure *echo.Group, ticketService services.TicketServiceInterface) {
	ticketCtrl := controllers.NewTicketController(ticketService)
	manage := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)

	secure.GET("/tickets", ticketCtrl.GetTickets, middleware.RequireAction(authz.ActionView))
	secure.GET("/tickets/:id", ticketCtrl.FindTicket, middleware.RequireAction(authz.ActionView))
	secure.POST("/tickets", ticketCtrl.CreateTicket, middleware.RequireAction(authz.ActionCreateTicket))
	secure.PUT("/tickets/:id", ticketCtrl.UpdateTicket, manage)
	secure.DELETE("/tickets/:id", ticketCtrl.DeleteTicket, manage)
}
