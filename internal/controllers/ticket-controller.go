package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parc-info/internal/dto"
	"parc-info/internal/services"
	"parc-info/pkg/api"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/middleware"
	"parc-info/pkg/utils"
)

type TicketController struct {
	service services.TicketServiceInterface
}

func NewTicketController(service services.TicketServiceInterface) *TicketController {
	return &TicketController{service: service}
}

func (ctrl *TicketController) GetTickets(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	tickets, total, err := ctrl.service.GetTickets(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Liste des tickets", tickets, total, params.Page, params.Limit)
}

func (ctrl *TicketController) FindTicket(c echo.Context) error {
	ticket, err := ctrl.service.FindTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Ticket", ticket)
}

func (ctrl *TicketController) CreateTicket(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	var d dto.CreateTicketDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	ticket, err := ctrl.service.CreateTicket(c.Request().Context(), userID, d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Ticket créé", ticket)
}

func (ctrl *TicketController) UpdateTicket(c echo.Context) error {
	var d dto.UpdateTicketDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	ticket, err := ctrl.service.UpdateTicket(c.Request().Context(), c.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Ticket mis à jour", ticket)
}

func (ctrl *TicketController) DeleteTicket(c echo.Context) error {
	if err := ctrl.service.DeleteTicket(c.Request().Context(), c.Param("id")); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Ticket supprimé", struct{}{})
}
