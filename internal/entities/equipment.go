package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"parc-info/pkg/types"
)

const (
	EquipmentTypeComputer   = "ordinateur"
	EquipmentTypeServer     = "serveur"
	EquipmentTypePeripheral = "périphérique"

	EquipmentStatusInService   = "en service"
	EquipmentStatusMaintenance = "en maintenance"
	EquipmentStatusOutOfOrder  = "hors service"
)

var EquipmentTypes = []string{EquipmentTypeComputer, EquipmentTypeServer, EquipmentTypePeripheral}

var EquipmentStatuses = []string{EquipmentStatusInService, EquipmentStatusMaintenance, EquipmentStatusOutOfOrder}

type Equipment struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	PurchaseDate string `json:"purchaseDate"`
	Status       string `json:"status"`
	// Référence faible vers Employee: pas de contrainte d'intégrité,
	// la suppression d'un employé laisse l'id en place.
	AssignedTo null.String `json:"assignedTo"`

	types.BaseEntity
}

const (
	HistoryActionAssignment  = "assignation"
	HistoryActionMaintenance = "maintenance"
	HistoryActionRemoval     = "retrait"
)

type EquipmentHistory struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipmentId"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	PerformedBy string    `json:"performedBy"`
	Date        time.Time `json:"date"`

	types.BaseEntity
}
