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

type InventoryController struct {
	service services.InventoryServiceInterface
}

func NewInventoryController(service services.InventoryServiceInterface) *InventoryController {
	return &InventoryController{service: service}
}

func (ctrl *InventoryController) GetInventories(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	list, total, err := ctrl.service.GetInventories(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Liste de l'inventaire", list, total, params.Page, params.Limit)
}

func (ctrl *InventoryController) FindInventory(c echo.Context) error {
	inventory, err := ctrl.service.FindInventory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Entrée d'inventaire", inventory)
}

func (ctrl *InventoryController) CreateInventory(c echo.Context) error {
	var d dto.CreateInventoryDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	inventory, err := ctrl.service.CreateInventory(c.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Entrée d'inventaire créée", inventory)
}

func (ctrl *InventoryController) UpdateInventory(c echo.Context) error {
	var d dto.UpdateInventoryDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	inventory, err := ctrl.service.UpdateInventory(c.Request().Context(), c.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Entrée d'inventaire mise à jour", inventory)
}

func (ctrl *InventoryController) DeleteInventory(c echo.Context) error {
	if err := ctrl.service.DeleteInventory(c.Request().Context(), c.Param("id")); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Entrée d'inventaire supprimée", struct{}{})
}
