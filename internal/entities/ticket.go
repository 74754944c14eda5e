package entities

import (
	"github.com/aarondl/null/v8"

	"parc-info/pkg/types"
)

const (
	TicketStatusOpen       = "ouvert"
	TicketStatusAssigned   = "assigné"
	TicketStatusInProgress = "en cours"
	TicketStatusResolved   = "résolu"
	TicketStatusClosed     = "clôturé"

	TicketPriorityLow    = "basse"
	TicketPriorityMedium = "moyenne"
	TicketPriorityHigh   = "haute"
)

var TicketStatuses = []string{
	TicketStatusOpen, TicketStatusAssigned, TicketStatusInProgress,
	TicketStatusResolved, TicketStatusClosed,
}

var TicketPriorities = []string{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh}

type Ticket struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CreatedBy   string      `json:"createdBy"`
	AssignedTo  null.String `json:"assignedTo"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`

	types.BaseEntity
}
