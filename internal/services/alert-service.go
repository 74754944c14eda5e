package services

import (
	"context"

	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

type AlertServiceInterface interface {
	GetAlerts(ctx context.Context, params utils.ListParams) ([]entities.Alert, uint64, error)
	FindAlert(ctx context.Context, id string) (*entities.Alert, error)
	UpdateStatus(ctx context.Context, id string, status string) (*entities.Alert, error)
}

type AlertService struct {
	repo repositories.AlertRepositoryInterface
}

func NewAlertService(repo repositories.AlertRepositoryInterface) AlertServiceInterface {
	return &AlertService{repo: repo}
}

// Rang de progression des statuts: une alerte n'avance que vers
// nouvelle -> en_cours -> lue, jamais en arrière.
var alertStatusRank = map[string]int{
	entities.AlertStatusNew:        0,
	entities.AlertStatusInProgress: 1,
	entities.AlertStatusRead:       2,
}

func (s *AlertService) GetAlerts(ctx context.Context, params utils.ListParams) ([]entities.Alert, uint64, error) {
	return s.repo.GetAlerts(ctx, params)
}

func (s *AlertService) FindAlert(ctx context.Context, id string) (*entities.Alert, error) {
	return s.repo.FindAlert(ctx, id)
}

func (s *AlertService) UpdateStatus(ctx context.Context, id string, status string) (*entities.Alert, error) {
	existing, err := s.repo.FindAlert(ctx, id)
	if err != nil {
		return nil, err
	}

	newRank, ok := alertStatusRank[status]
	if !ok {
		return nil, apperrors.NewValidationError(map[string]string{"status": "Statut inconnu"})
	}
	if newRank < alertStatusRank[existing.Status] {
		return nil, apperrors.NewValidationError(map[string]string{"status": "Retour en arrière interdit"})
	}
	if newRank == alertStatusRank[existing.Status] {
		return existing, nil
	}

	return s.repo.UpdateAlertStatus(ctx, id, status)
}
