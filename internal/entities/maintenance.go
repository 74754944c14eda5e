package entities

import (
	"github.com/aarondl/null/v8"

	"parc-info/pkg/types"
)

// Statuts canoniques du planning. Les graphies accentuées historiques
// ("planifié", "en cours", ...) sont normalisées à l'entrée par le
// pipeline de formulaires.
const (
	MaintenanceStatusPlanned    = "planifie"
	MaintenanceStatusInProgress = "en_cours"
	MaintenanceStatusDone       = "termine"
	MaintenanceStatusCancelled  = "annule"

	MaintenanceTypePreventive = "preventive"
	MaintenanceTypeCorrective = "corrective"
	MaintenanceTypeUpdate     = "mise_a_jour"
)

var MaintenanceStatuses = []string{
	MaintenanceStatusPlanned, MaintenanceStatusInProgress,
	MaintenanceStatusDone, MaintenanceStatusCancelled,
}

var MaintenanceTypes = []string{
	MaintenanceTypePreventive, MaintenanceTypeCorrective, MaintenanceTypeUpdate,
}

// Libellés d'affichage des statuts canoniques.
var MaintenanceStatusLabels = map[string]string{
	MaintenanceStatusPlanned:    "Planifié",
	MaintenanceStatusInProgress: "En cours",
	MaintenanceStatusDone:       "Terminé",
	MaintenanceStatusCancelled:  "Annulé",
}

type MaintenanceSchedule struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Status      string      `json:"status"`
	Notes       null.String `json:"notes"`

	types.BaseEntity
}
