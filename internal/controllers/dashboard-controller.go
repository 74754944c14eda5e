package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parc-info/internal/services"
	"parc-info/pkg/api"
)

type DashboardController struct {
	service services.DashboardServiceInterface
}

func NewDashboardController(service services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{service: service}
}

func (ctrl *DashboardController) GetStats(c echo.Context) error {
	stats, err := ctrl.service.GetStats(c.Request().Context())
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Statistiques du parc", stats)
}
