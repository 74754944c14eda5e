package forms

import (
	"parc-info/internal/dto"
	"parc-info/internal/entities"
)

type LicenseForm struct {
	Name         string
	Vendor       string
	Type         string
	LicenseKey   string
	MaxUsers     string
	CurrentUsers string
	Cost         string
	ExpiryDate   string
}

func (f LicenseForm) Validate() Errors {
	errs := Errors{}
	requireField(errs, "name", f.Name)
	requireField(errs, "vendor", f.Vendor)
	requireField(errs, "type", f.Type)
	if _, err := ParseOptionalInt(f.MaxUsers); err != nil {
		errs.add("maxUsers", err.Error())
	}
	if _, err := ParseIntDefault(f.CurrentUsers, 0); err != nil {
		errs.add("currentUsers", err.Error())
	}
	if _, err := ParseMoney(f.Cost); err != nil {
		errs.add("cost", err.Error())
	}
	optionalDate(errs, "expiryDate", f.ExpiryDate)
	return errs.OrNil()
}

// Payload suppose Validate() sans erreur.
func (f LicenseForm) Payload() dto.CreateLicenseDTO {
	maxUsers, _ := ParseOptionalInt(f.MaxUsers)
	currentUsers, _ := ParseIntDefault(f.CurrentUsers, 0)
	cost, _ := ParseMoney(f.Cost)
	return dto.CreateLicenseDTO{
		Name:         f.Name,
		Vendor:       f.Vendor,
		Type:         f.Type,
		LicenseKey:   NormalizeOptional(f.LicenseKey),
		MaxUsers:     maxUsers,
		CurrentUsers: currentUsers,
		Cost:         cost,
		ExpiryDate:   NormalizeOptional(f.ExpiryDate),
	}
}

// PrefillLicense reconstruit le formulaire depuis l'enregistrement stocké
// (1250 centimes => "12.50"), aller-retour idempotent.
func PrefillLicense(l entities.License) LicenseForm {
	maxUsers := ""
	if l.MaxUsers.Valid {
		maxUsers = FormatInt(l.MaxUsers.Int64)
	}
	return LicenseForm{
		Name:         l.Name,
		Vendor:       l.Vendor,
		Type:         l.Type,
		LicenseKey:   l.LicenseKey.String,
		MaxUsers:     maxUsers,
		CurrentUsers: FormatInt(l.CurrentUsers),
		Cost:         FormatMoney(l.Cost),
		ExpiryDate:   l.ExpiryDate.String,
	}
}
