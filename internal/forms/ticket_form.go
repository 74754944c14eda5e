package forms

import (
	"parc-info/internal/dto"
	"parc-info/internal/entities"
)

type TicketForm struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    string
}

func (f TicketForm) Validate() Errors {
	errs := Errors{}
	requireField(errs, "title", f.Title)
	requireField(errs, "description", f.Description)
	requireEnum(errs, "priority", f.Priority, entities.TicketPriorities)
	return errs.OrNil()
}

func (f TicketForm) Payload() dto.CreateTicketDTO {
	return dto.CreateTicketDTO{
		Title:       f.Title,
		Description: f.Description,
		AssignedTo:  NormalizeAssignee(f.AssignedTo),
		Priority:    f.Priority,
	}
}
