package services

import (
	"context"
	"time"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/forms"
	"parc-info/internal/repositories"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

type MaintenanceServiceInterface interface {
	GetSchedules(ctx context.Context, params utils.ListParams) ([]dto.MaintenanceDTO, uint64, error)
	FindSchedule(ctx context.Context, id string) (*dto.MaintenanceDTO, error)
	CreateSchedule(ctx context.Context, d dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error)
	UpdateSchedule(ctx context.Context, id string, d dto.UpdateMaintenanceDTO) (*dto.MaintenanceDTO, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type MaintenanceService struct {
	repo repositories.MaintenanceRepositoryInterface
}

func NewMaintenanceService(repo repositories.MaintenanceRepositoryInterface) MaintenanceServiceInterface {
	return &MaintenanceService{repo: repo}
}

func toMaintenanceDTO(m *entities.MaintenanceSchedule) *dto.MaintenanceDTO {
	return &dto.MaintenanceDTO{
		ID:          m.ID,
		Type:        m.Type,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      m.Status,
		StatusLabel: entities.MaintenanceStatusLabels[m.Status],
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

// normalize ramène le statut à sa forme canonique et vérifie l'ordre
// des dates. Fin strictement postérieure au début.
func (s *MaintenanceService) normalize(d *dto.CreateMaintenanceDTO) error {
	canonical, ok := forms.NormalizeMaintenanceStatus(d.Status)
	if !ok {
		return apperrors.NewValidationError(map[string]string{"status": "Statut inconnu"})
	}
	d.Status = canonical

	start, err := time.Parse("2006-01-02", d.StartDate)
	if err != nil {
		return apperrors.NewValidationError(map[string]string{"startDate": "Date invalide"})
	}
	end, err := time.Parse("2006-01-02", d.EndDate)
	if err != nil {
		return apperrors.NewValidationError(map[string]string{"endDate": "Date invalide"})
	}
	if !end.After(start) {
		return apperrors.NewValidationError(map[string]string{"endDate": "La date de fin doit être postérieure à la date de début"})
	}
	return nil
}

func (s *MaintenanceService) GetSchedules(ctx context.Context, params utils.ListParams) ([]dto.MaintenanceDTO, uint64, error) {
	schedules, total, err := s.repo.GetSchedules(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	result := make([]dto.MaintenanceDTO, 0, len(schedules))
	for i := range schedules {
		result = append(result, *toMaintenanceDTO(&schedules[i]))
	}
	return result, total, nil
}

func (s *MaintenanceService) FindSchedule(ctx context.Context, id string) (*dto.MaintenanceDTO, error) {
	m, err := s.repo.FindSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMaintenanceDTO(m), nil
}

func (s *MaintenanceService) CreateSchedule(ctx context.Context, d dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	if err := s.normalize(&d); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateSchedule(ctx, d)
	if err != nil {
		return nil, err
	}
	return toMaintenanceDTO(created), nil
}

func (s *MaintenanceService) UpdateSchedule(ctx context.Context, id string, d dto.UpdateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	if err := s.normalize(&d); err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateSchedule(ctx, id, d)
	if err != nil {
		return nil, err
	}
	return toMaintenanceDTO(updated), nil
}

func (s *MaintenanceService) DeleteSchedule(ctx context.Context, id string) error {
	return s.repo.DeleteSchedule(ctx, id)
}
