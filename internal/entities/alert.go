package entities

import "parc-info/pkg/types"

const (
	AlertStatusNew        = "nouvelle"
	AlertStatusInProgress = "en_cours"
	AlertStatusRead       = "lue"
)

var AlertStatuses = []string{AlertStatusNew, AlertStatusInProgress, AlertStatusRead}

var AlertTypes = []string{
	"info", "warning", "error", "success", "securite", "maintenance", "licence",
}

type Alert struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`

	types.BaseEntity
}
