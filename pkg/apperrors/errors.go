package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Session
	ErrInvalidSigningMethod = errors.New("méthode de signature du jeton invalide")
	ErrInvalidToken         = errors.New("jeton de session invalide")
	ErrSessionExpired       = errors.New("la session a expiré")
	ErrSessionRevoked       = errors.New("la session a été révoquée")

	// Authentification / autorisation
	ErrInvalidCredentials = errors.New("identifiants invalides")
	ErrAccountDisabled    = errors.New("ce compte est désactivé")
	ErrUnauthorized       = errors.New("non authentifié")
	ErrForbidden          = errors.New("accès refusé")

	// Contexte
	ErrUserNotFoundInContext = errors.New("utilisateur absent du contexte de la requête")

	// Générales
	ErrNotFound       = errors.New("enregistrement introuvable")
	ErrBadRequest     = errors.New("requête invalide")
	ErrEmailTaken     = errors.New("cette adresse email est déjà utilisée")
	ErrInternalServer = errors.New("erreur interne du serveur")
)

// HttpError porte le code HTTP, le message utilisateur et l'erreur technique.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewValidationError(details interface{}) *HttpError {
	return &HttpError{
		Code:    http.StatusBadRequest,
		Message: "Erreur de validation",
		Details: details,
	}
}

func NewInternalError(message string) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: message}
}

// CodeFor mappe les erreurs sentinelles vers un code HTTP; 500 par défaut.
func CodeFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrSessionExpired),
		errors.Is(err, ErrSessionRevoked),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrAccountDisabled):
		return http.StatusForbidden
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
