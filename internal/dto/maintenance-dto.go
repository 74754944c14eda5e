package dto

import "github.com/aarondl/null/v8"

// Status accepte les deux graphies historiques ("planifié" / "planifie");
// la normalisation vers l'énumération canonique se fait dans le service.
type CreateMaintenanceDTO struct {
	Type        string      `json:"type" validate:"required,oneof=preventive corrective mise_a_jour"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description" validate:"required"`
	StartDate   string      `json:"startDate" validate:"required,date_iso"`
	EndDate     string      `json:"endDate" validate:"required,date_iso"`
	Status      string      `json:"status" validate:"required"`
	Notes       null.String `json:"notes"`
}

type UpdateMaintenanceDTO = CreateMaintenanceDTO

type MaintenanceDTO struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Status      string      `json:"status"`
	StatusLabel string      `json:"statusLabel"`
	Notes       null.String `json:"notes"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}
