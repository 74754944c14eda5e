package entities

import (
	"github.com/aarondl/null/v8"

	"parc-info/pkg/types"
)

const (
	ConditionFunctional = "fonctionnel"
	ConditionDefective  = "défectueux"
)

var InventoryConditions = []string{ConditionFunctional, ConditionDefective}

type Inventory struct {
	ID          string      `json:"id"`
	EquipmentID string      `json:"equipmentId"`
	AssignedTo  null.String `json:"assignedTo"`
	Location    string      `json:"location"`
	LastChecked string      `json:"lastChecked"`
	Condition   string      `json:"condition"`

	types.BaseEntity
}
