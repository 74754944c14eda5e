package forms

import (
	"strings"

	"parc-info/internal/entities"
)

// Les deux graphies coexistent dans l'historique des données: accentuée
// ("planifié", "en cours") et canonique ("planifie", "en_cours"). Tout
// converge ici vers l'énumération canonique; l'autre n'est qu'un mapping
// de migration/affichage.
var maintenanceStatusAliases = map[string]string{
	"planifié": entities.MaintenanceStatusPlanned,
	"planifie": entities.MaintenanceStatusPlanned,
	"en cours": entities.MaintenanceStatusInProgress,
	"en_cours": entities.MaintenanceStatusInProgress,
	"terminé":  entities.MaintenanceStatusDone,
	"termine":  entities.MaintenanceStatusDone,
	"annulé":   entities.MaintenanceStatusCancelled,
	"annule":   entities.MaintenanceStatusCancelled,
}

// NormalizeMaintenanceStatus rend le statut canonique, ou faux si la valeur
// n'appartient à aucune des deux graphies connues.
func NormalizeMaintenanceStatus(s string) (string, bool) {
	canonical, ok := maintenanceStatusAliases[strings.ToLower(strings.TrimSpace(s))]
	return canonical, ok
}
