package dto

import "github.com/aarondl/null/v8"

type CreateTicketDTO struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description" validate:"required"`
	AssignedTo  null.String `json:"assignedTo"`
	Priority    string      `json:"priority" validate:"required,oneof=basse moyenne haute"`
}

type UpdateTicketDTO struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description" validate:"required"`
	AssignedTo  null.String `json:"assignedTo"`
	Status      string      `json:"status" validate:"required,oneof=ouvert assigné 'en cours' résolu clôturé"`
	Priority    string      `json:"priority" validate:"required,oneof=basse moyenne haute"`
}
