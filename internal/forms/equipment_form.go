package forms

import (
	"parc-info/internal/dto"
	"parc-info/internal/entities"
)

type EquipmentForm struct {
	Type         string
	Model        string
	SerialNumber string
	PurchaseDate string
	Status       string
	AssignedTo   string
}

func (f EquipmentForm) Validate() Errors {
	errs := Errors{}
	requireEnum(errs, "type", f.Type, entities.EquipmentTypes)
	requireField(errs, "model", f.Model)
	requireField(errs, "serialNumber", f.SerialNumber)
	requireDate(errs, "purchaseDate", f.PurchaseDate)
	requireEnum(errs, "status", f.Status, entities.EquipmentStatuses)
	return errs.OrNil()
}

func (f EquipmentForm) Payload() dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		Type:         f.Type,
		Model:        f.Model,
		SerialNumber: f.SerialNumber,
		PurchaseDate: f.PurchaseDate,
		Status:       f.Status,
		AssignedTo:   NormalizeAssignee(f.AssignedTo),
	}
}

func PrefillEquipment(e entities.Equipment) EquipmentForm {
	assignedTo := UnassignedSentinel
	if e.AssignedTo.Valid {
		assignedTo = e.AssignedTo.String
	}
	return EquipmentForm{
		Type:         e.Type,
		Model:        e.Model,
		SerialNumber: e.SerialNumber,
		PurchaseDate: e.PurchaseDate,
		Status:       e.Status,
		AssignedTo:   assignedTo,
	}
}
