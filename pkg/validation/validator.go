package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"parc-info/pkg/apperrors"
)

// CustomValidator implémente echo.Validator. Les échecs sont convertis en
// erreur de validation portant une carte champ -> message.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError(nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		if _, seen := fields[name]; !seen {
			fields[name] = messageFor(fe)
		}
	}
	return apperrors.NewValidationError(fields)
}

func fieldName(fe validator.FieldError) string {
	// Nom du champ en minuscule initiale, comme dans le JSON.
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est requis"
	case "email":
		return "Adresse email invalide"
	case "min":
		return "Valeur trop courte (minimum " + fe.Param() + ")"
	case "gte":
		return "Valeur trop petite (minimum " + fe.Param() + ")"
	case "oneof":
		return "Valeur hors de la liste autorisée"
	case "date_iso":
		return "Date attendue au format AAAA-MM-JJ"
	case "datetime_iso":
		return "Date et heure attendues au format ISO"
	default:
		return "Valeur invalide"
	}
}

func New() *CustomValidator {
	v := validator.New()

	// Si une règle ne s'enregistre pas, le serveur ne doit pas démarrer.
	if err := registerRules(v); err != nil {
		panic("erreur d'enregistrement des règles de validation: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
