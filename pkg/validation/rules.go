package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("date_iso", isISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("datetime_iso", isISODateTime); err != nil {
		return err
	}
	return nil
}

// isISODate — "2006-01-02"
func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// isISODateTime — RFC3339 ou date simple
func isISODateTime(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
