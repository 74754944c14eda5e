package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Type         string      `json:"type" validate:"required,oneof=ordinateur serveur périphérique"`
	Model        string      `json:"model" validate:"required"`
	SerialNumber string      `json:"serialNumber" validate:"required"`
	PurchaseDate string      `json:"purchaseDate" validate:"required,date_iso"`
	Status       string      `json:"status" validate:"required,oneof='en service' 'en maintenance' 'hors service'"`
	AssignedTo   null.String `json:"assignedTo"`
}

type UpdateEquipmentDTO = CreateEquipmentDTO
