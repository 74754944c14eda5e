package forms

import (
	"time"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
)

type MaintenanceForm struct {
	Type        string
	Title       string
	Description string
	StartDate   string
	EndDate     string
	Status      string
	Notes       string
}

func (f MaintenanceForm) Validate() Errors {
	errs := Errors{}
	requireEnum(errs, "type", f.Type, entities.MaintenanceTypes)
	requireField(errs, "title", f.Title)
	requireField(errs, "description", f.Description)
	start := requireDate(errs, "startDate", f.StartDate)
	end := requireDate(errs, "endDate", f.EndDate)

	if _, ok := errs["startDate"]; !ok {
		if _, ok := errs["endDate"]; !ok {
			s, _ := time.Parse("2006-01-02", start)
			e, _ := time.Parse("2006-01-02", end)
			if !e.After(s) {
				errs.add("endDate", "la date de fin doit être postérieure à la date de début")
			}
		}
	}

	if _, ok := NormalizeMaintenanceStatus(f.Status); !ok {
		errs.add("status", "statut inconnu")
	}
	return errs.OrNil()
}

func (f MaintenanceForm) Payload() dto.CreateMaintenanceDTO {
	status, _ := NormalizeMaintenanceStatus(f.Status)
	return dto.CreateMaintenanceDTO{
		Type:        f.Type,
		Title:       f.Title,
		Description: f.Description,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Status:      status,
		Notes:       NormalizeOptional(f.Notes),
	}
}
