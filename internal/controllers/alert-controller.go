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

type AlertController struct {
	service services.AlertServiceInterface
}

func NewAlertController(service services.AlertServiceInterface) *AlertController {
	return &AlertController{service: service}
}

func (ctrl *AlertController) GetAlerts(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	alerts, total, err := ctrl.service.GetAlerts(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Liste des alertes", alerts, total, params.Page, params.Limit)
}

func (ctrl *AlertController) FindAlert(c echo.Context) error {
	alert, err := ctrl.service.FindAlert(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Alerte", alert)
}

func (ctrl *AlertController) UpdateAlert(c echo.Context) error {
	var d dto.UpdateAlertDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	alert, err := ctrl.service.UpdateStatus(c.Request().Context(), c.Param("id"), d.Status)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Alerte mise à jour", alert)
}
