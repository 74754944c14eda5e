package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/services"
	"parc-info/pkg/api"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

type LicenseController struct {
	service services.LicenseServiceInterface
}

func NewLicenseController(service services.LicenseServiceInterface) *LicenseController {
	return &LicenseController{service: service}
}

func (ctrl *LicenseController) GetLicenses(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	licenses, total, err := ctrl.service.GetLicenses(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Liste des licences", licenses, total, params.Page, params.Limit)
}

func (ctrl *LicenseController) FindLicense(c echo.Context) error {
	license, err := ctrl.service.FindLicense(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Licence", license)
}

func (ctrl *LicenseController) CreateLicense(c echo.Context) error {
	var d dto.CreateLicenseDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	license, err := ctrl.service.CreateLicense(c.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Licence créée", license)
}

func (ctrl *LicenseController) UpdateLicense(c echo.Context) error {
	var d dto.UpdateLicenseDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	license, err := ctrl.service.UpdateLicense(c.Request().Context(), c.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Licence mise à jour", license)
}

func (ctrl *LicenseController) DeleteLicense(c echo.Context) error {
	if err := ctrl.service.DeleteLicense(c.Request().Context(), c.Param("id")); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Licence supprimée", struct{}{})
}

// GetExpiringLicenses liste les licences expirant sous :days jours.
func (ctrl *LicenseController) GetExpiringLicenses(c echo.Context) error {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 0 {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Nombre de jours invalide", apperrors.ErrBadRequest))
	}

	licenses, err := ctrl.service.GetExpiringLicenses(c.Request().Context(), days)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	if licenses == nil {
		licenses = []entities.License{}
	}
	return api.SuccessOne(c, http.StatusOK, "Licences en voie d'expiration", licenses)
}
