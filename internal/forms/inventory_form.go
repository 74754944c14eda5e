package forms

import (
	"parc-info/internal/dto"
	"parc-info/internal/entities"
)

type InventoryForm struct {
	EquipmentID string
	AssignedTo  string
	Location    string
	LastChecked string
	Condition   string
}

func (f InventoryForm) Validate() Errors {
	errs := Errors{}
	requireField(errs, "equipmentId", f.EquipmentID)
	requireField(errs, "location", f.Location)
	requireDate(errs, "lastChecked", f.LastChecked)
	requireEnum(errs, "condition", f.Condition, entities.InventoryConditions)
	return errs.OrNil()
}

func (f InventoryForm) Payload() dto.CreateInventoryDTO {
	return dto.CreateInventoryDTO{
		EquipmentID: f.EquipmentID,
		AssignedTo:  NormalizeAssignee(f.AssignedTo),
		Location:    f.Location,
		LastChecked: f.LastChecked,
		Condition:   f.Condition,
	}
}
