package dto

import "github.com/aarondl/null/v8"

type CreateInventoryDTO struct {
	EquipmentID string      `json:"equipmentId" validate:"required"`
	AssignedTo  null.String `json:"assignedTo"`
	Location    string      `json:"location" validate:"required"`
	LastChecked string      `json:"lastChecked" validate:"required,date_iso"`
	Condition   string      `json:"condition" validate:"required,oneof=fonctionnel défectueux"`
}

type UpdateInventoryDTO = CreateInventoryDTO
