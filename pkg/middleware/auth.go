package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"parc-info/internal/authz"
	"parc-info/internal/repositories"
	"parc-info/pkg/api"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/contextkeys"
	"parc-info/pkg/service"
)

// AuthMiddleware lit le cookie de session, vérifie le jeton, contrôle que
// la session est toujours enregistrée côté redis et que le compte est actif,
// puis pose l'identité dans le contexte de la requête.
func AuthMiddleware(
	cookieName string,
	tokens service.SessionTokenService,
	sessionRepo repositories.SessionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return api.ErrorResponse(c, apperrors.ErrUnauthorized)
			}

			claims, err := tokens.ValidateToken(cookie.Value)
			if err != nil {
				return api.ErrorResponse(c, err)
			}

			alive, err := sessionRepo.Exists(c.Request().Context(), claims.UserID, claims.SessionID)
			if err != nil {
				return api.ErrorResponse(c, err)
			}
			if !alive {
				return api.ErrorResponse(c, apperrors.ErrSessionRevoked)
			}

			user, err := userRepo.FindUser(c.Request().Context(), claims.UserID)
			if err != nil {
				return api.ErrorResponse(c, apperrors.ErrUnauthorized)
			}
			if !user.IsActive {
				return api.ErrorResponse(c, apperrors.ErrAccountDisabled)
			}

			ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, user.ID)
			ctx = context.WithValue(ctx, contextkeys.UserRoleKey, user.Role)
			ctx = context.WithValue(ctx, contextkeys.SessionIDKey, claims.SessionID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireAction bloque la route si le rôle courant n'a pas le droit
// d'exécuter l'action nommée. Refus par défaut.
func RequireAction(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Request().Context().Value(contextkeys.UserRoleKey).(authz.Role)
			if !ok || !authz.CanPerformAction(role, action) {
				return api.ErrorResponse(c, apperrors.ErrForbidden)
			}
			return next(c)
		}
	}
}

// RequireRoles limite la route à une liste blanche de rôles.
func RequireRoles(roles ...authz.Role) echo.MiddlewareFunc {
	allowed := make(map[authz.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Request().Context().Value(contextkeys.UserRoleKey).(authz.Role)
			if !ok || !authz.HasAccess(role, allowed) {
				return api.ErrorResponse(c, apperrors.ErrForbidden)
			}
			return next(c)
		}
	}
}

// UserID extrait l'identifiant utilisateur posé par AuthMiddleware.
func UserID(c echo.Context) (string, error) {
	id, ok := c.Request().Context().Value(contextkeys.UserIDKey).(string)
	if !ok || id == "" {
		return "", apperrors.ErrUserNotFoundInContext
	}
	return id, nil
}

// SessionID extrait l'identifiant de session courant.
func SessionID(c echo.Context) (string, error) {
	id, ok := c.Request().Context().Value(contextkeys.SessionIDKey).(string)
	if !ok || id == "" {
		return "", apperrors.ErrUserNotFoundInContext
	}
	return id, nil
}
