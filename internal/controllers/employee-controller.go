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

type EmployeeController struct {
	service services.EmployeeServiceInterface
}

func NewEmployeeController(service services.EmployeeServiceInterface) *EmployeeController {
	return &EmployeeController{service: service}
}

func (ctrl *EmployeeController) GetEmployees(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	employees, total, err := ctrl.service.GetEmployees(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Liste des employés", employees, total, params.Page, params.Limit)
}

func (ctrl *EmployeeController) FindEmployee(c echo.Context) error {
	employee, err := ctrl.service.FindEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Employé", employee)
}

func (ctrl *EmployeeController) CreateEmployee(c echo.Context) error {
	var d dto.CreateEmployeeDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	employee, err := ctrl.service.CreateEmployee(c.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Employé créé", employee)
}

func (ctrl *EmployeeController) UpdateEmployee(c echo.Context) error {
	var d dto.UpdateEmployeeDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	employee, err := ctrl.service.UpdateEmployee(c.Request().Context(), c.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Employé mis à jour", employee)
}

func (ctrl *EmployeeController) DeleteEmployee(c echo.Context) error {
	if err := ctrl.service.DeleteEmployee(c.Request().Context(), c.Param("id")); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Employé supprimé", struct{}{})
}
