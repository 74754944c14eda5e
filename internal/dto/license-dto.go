package dto

import "github.com/aarondl/null/v8"

// Cost est en centimes: le client multiplie par 100 avant l'envoi,
// champ vide => null (jamais 0 ni NaN).
type CreateLicenseDTO struct {
	Name         string      `json:"name" validate:"required"`
	Vendor       string      `json:"vendor" validate:"required"`
	Type         string      `json:"type" validate:"required"`
	LicenseKey   null.String `json:"licenseKey"`
	MaxUsers     null.Int64  `json:"maxUsers" validate:"omitempty"`
	CurrentUsers int64       `json:"currentUsers" validate:"gte=0"`
	Cost         null.Int64  `json:"cost" validate:"omitempty"`
	ExpiryDate   null.String `json:"expiryDate" validate:"omitempty"`
}

type UpdateLicenseDTO = CreateLicenseDTO
