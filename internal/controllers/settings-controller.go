package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"parc-info/internal/services"
	"parc-info/pkg/api"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SettingsController struct {
	service services.SettingsServiceInterface
}

func NewSettingsController(service services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{service: service}
}

func (ctrl *SettingsController) Export(c echo.Context) error {
	collection := c.Param("type")
	f, err := ctrl.service.Export(c.Request().Context(), collection)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.xlsx"`, collection))
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}

func (ctrl *SettingsController) Template(c echo.Context) error {
	collection := c.Param("type")
	f, err := ctrl.service.Template(collection)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-template.xlsx"`, collection))
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}

// Import attend un multipart avec le champ "file" (classeur xlsx) et le
// champ "type" (nom de la collection).
func (ctrl *SettingsController) Import(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	collection := c.FormValue("type")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Fichier manquant", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Fichier illisible", err))
	}
	defer src.Close()

	report, err := ctrl.service.Import(c.Request().Context(), collection, userID, src)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Import terminé", report)
}
