package dto

// Seule la transition de statut est modifiable côté API.
type UpdateAlertDTO struct {
	Status string `json:"status" validate:"required,oneof=nouvelle en_cours lue"`
}
