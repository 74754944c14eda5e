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

type UserController struct {
	service services.UserServiceInterface
}

func NewUserController(service services.UserServiceInterface) *UserController {
	return &UserController{service: service}
}

func (ctrl *UserController) GetUsers(c echo.Context) error {
	params := utils.ParseListParams(c.QueryParams())
	users, total, err := ctrl.service.GetUsers(c.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessList(c, "Liste des utilisateurs", users, total, params.Page, params.Limit)
}

func (ctrl *UserController) FindUser(c echo.Context) error {
	user, err := ctrl.service.FindUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Utilisateur", user)
}

func (ctrl *UserController) CreateUser(c echo.Context) error {
	var d dto.CreateUserDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	user, err := ctrl.service.CreateUser(c.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Utilisateur créé", user)
}

func (ctrl *UserController) UpdateUser(c echo.Context) error {
	var d dto.UpdateUserDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	user, err := ctrl.service.UpdateUser(c.Request().Context(), c.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Utilisateur mis à jour", user)
}

func (ctrl *UserController) DeleteUser(c echo.Context) error {
	if err := ctrl.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Utilisateur supprimé", struct{}{})
}
