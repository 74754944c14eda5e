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

type EquipmentController struct {
	service services.EquipmentServiceInterface
}

func NewEquipmentController(service services.EquipmentServiceInterface) *EquipmentController {
	return &EquipmentController{service: service}
}

func (ctrl *EquipmentController) GetEquipments(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	list, total, err := ctrl.service.GetEquipments(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Liste des équipements", list, total, params.Page, params.Limit)
}

func (ctrl *EquipmentController) FindEquipment(c echo.Context) error {
	equipment, err := ctrl.service.FindEquipment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Équipement", equipment)
}

func (ctrl *EquipmentController) CreateEquipment(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	var d dto.CreateEquipmentDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	equipment, err := ctrl.service.CreateEquipment(c.Request().Context(), userID, d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Équipement créé", equipment)
}

func (ctrl *EquipmentController) UpdateEquipment(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	var d dto.UpdateEquipmentDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	equipment, err := ctrl.service.UpdateEquipment(c.Request().Context(), c.Param("id"), userID, d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Équipement mis à jour", equipment)
}

func (ctrl *EquipmentController) DeleteEquipment(c echo.Context) error {
	if err := ctrl.service.DeleteEquipment(c.Request().Context(), c.Param("id")); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Équipement supprimé", struct{}{})
}

func (ctrl *EquipmentController) GetHistory(c echo.Context) error {
	history, err := ctrl.service.GetHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Historique de l'équipement", history)
}
