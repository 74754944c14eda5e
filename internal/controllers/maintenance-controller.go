package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parc-info/internal/dto"
	"parc-info/internal/services"
	"parc-info/pkg/api"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

type MaintenanceController struct {
	service services.MaintenanceServiceInterface
}

func NewMaintenanceController(service services.MaintenanceServiceInterface) *MaintenanceController {
	return &MaintenanceController{service: service}
}

func (ctrl *MaintenanceController) GetSchedules(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	schedules, total, err := ctrl.service.GetSchedules(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Planning de maintenance", schedules, total, params.Page, params.Limit)
}

func (ctrl *MaintenanceController) FindSchedule(c echo.Context) error {
	schedule, err := ctrl.service.FindSchedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Intervention", schedule)
}

func (ctrl *MaintenanceController) CreateSchedule(c echo.Context) error {
	var d dto.CreateMaintenanceDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	schedule, err := ctrl.service.CreateSchedule(c.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Intervention planifiée", schedule)
}

func (ctrl *MaintenanceController) UpdateSchedule(c echo.Context) error {
	var d dto.UpdateMaintenanceDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	schedule, err := ctrl.service.UpdateSchedule(c.Request().Context(), c.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Intervention mise à jour", schedule)
}

func (ctrl *MaintenanceController) DeleteSchedule(c echo.Context) error {
	if err := ctrl.service.DeleteSchedule(c.Request().Context(), c.Param("id")); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Intervention supprimée", struct{}{})
}
