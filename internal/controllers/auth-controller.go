package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-info/internal/dto"
	"parc-info/internal/services"
	"parc-info/pkg/api"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/config"
	"parc-info/pkg/middleware"
)

type AuthController struct {
	service services.AuthServiceInterface
	session config.SessionConfig
	logger  *zap.Logger
}

func NewAuthController(service services.AuthServiceInterface, session config.SessionConfig, logger *zap.Logger) *AuthController {
	return &AuthController{service: service, session: session, logger: logger}
}

func (ctrl *AuthController) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     ctrl.session.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var d dto.LoginDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	token, user, err := ctrl.service.Login(c.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	c.SetCookie(ctrl.sessionCookie(token, ctrl.session.TTL))
	return api.SuccessOne(c, http.StatusOK, "Connexion réussie", user)
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var d dto.RegisterDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	user, err := ctrl.service.Register(c.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusCreated, "Compte créé", user)
}

// Me répond 200 avec l'utilisateur courant, ou 401 via le middleware:
// c'est le point de contrôle de session du client.
func (ctrl *AuthController) Me(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	user, err := ctrl.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Utilisateur courant", user)
}

func (ctrl *AuthController) UpdateProfile(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	var d dto.UpdateProfileDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	user, err := ctrl.service.UpdateProfile(c.Request().Context(), userID, d)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Profil mis à jour", user)
}

func (ctrl *AuthController) ChangePassword(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	var d dto.ChangePasswordDTO
	if err := c.Bind(&d); err != nil {
		return api.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Corps de requête invalide", err))
	}
	if err := c.Validate(&d); err != nil {
		return api.ErrorResponse(c, err)
	}

	if err := ctrl.service.ChangePassword(c.Request().Context(), userID, d); err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Mot de passe modifié", struct{}{})
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	if err := ctrl.service.Logout(c.Request().Context(), userID, sessionID); err != nil {
		return api.ErrorResponse(c, err)
	}

	c.SetCookie(ctrl.sessionCookie("", -time.Second))
	return api.SuccessOne(c, http.StatusOK, "Déconnexion réussie", struct{}{})
}

func (ctrl *AuthController) LogoutOtherSessions(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return api.ErrorResponse(c, err)
	}

	revoked, err := ctrl.service.LogoutOtherSessions(c.Request().Context(), userID, sessionID)
	if err != nil {
		return api.ErrorResponse(c, err)
	}
	return api.SuccessOne(c, http.StatusOK, "Autres sessions révoquées", map[string]int64{"revoked": revoked})
}
