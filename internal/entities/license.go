package entities

import (
	"github.com/aarondl/null/v8"

	"parc-info/pkg/types"
)

type License struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Vendor       string      `json:"vendor"`
	Type         string      `json:"type"`
	LicenseKey   null.String `json:"licenseKey"`
	MaxUsers     null.Int64  `json:"maxUsers"`
	CurrentUsers int64       `json:"currentUsers"`
	// Montant en centimes. La division par 100 n'a lieu qu'à l'affichage.
	Cost       null.Int64  `json:"cost"`
	ExpiryDate null.String `json:"expiryDate"`

	types.BaseEntity
}
