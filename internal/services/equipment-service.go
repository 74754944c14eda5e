package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, params utils.ListParams) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, performedBy string, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id, performedBy string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
	GetHistory(ctx context.Context, equipmentID string) ([]entities.EquipmentHistory, error)
}

type EquipmentService struct {
	repo   repositories.EquipmentRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentService(repo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, params utils.ListParams) ([]entities.Equipment, uint64, error) {
	return s.repo.GetEquipments(ctx, params)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.repo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, performedBy string, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	created, err := s.repo.CreateEquipment(ctx, d)
	if err != nil {
		return nil, err
	}
	if created.AssignedTo.Valid {
		s.recordHistory(ctx, created.ID, entities.HistoryActionAssignment,
			fmt.Sprintf("Équipement assigné à %s", created.AssignedTo.String), performedBy)
	}
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id, performedBy string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	existing, err := s.repo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateEquipment(ctx, id, d)
	if err != nil {
		return nil, err
	}

	// Chaque changement d'affectation ou de statut laisse une trace.
	if existing.AssignedTo != updated.AssignedTo {
		switch {
		case updated.AssignedTo.Valid:
			s.recordHistory(ctx, id, entities.HistoryActionAssignment,
				fmt.Sprintf("Équipement assigné à %s", updated.AssignedTo.String), performedBy)
		default:
			s.recordHistory(ctx, id, entities.HistoryActionRemoval,
				"Équipement désassigné", performedBy)
		}
	}
	if existing.Status != updated.Status {
		action := entities.HistoryActionAssignment
		switch updated.Status {
		case entities.EquipmentStatusMaintenance:
			action = entities.HistoryActionMaintenance
		case entities.EquipmentStatusOutOfOrder:
			action = entities.HistoryActionRemoval
		}
		s.recordHistory(ctx, id, action,
			fmt.Sprintf("Statut: %s -> %s", existing.Status, updated.Status), performedBy)
	}

	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.repo.DeleteEquipment(ctx, id)
}

func (s *EquipmentService) GetHistory(ctx context.Context, equipmentID string) ([]entities.EquipmentHistory, error) {
	if _, err := s.repo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.repo.GetHistory(ctx, equipmentID)
}

// L'historique est un journal annexe: un échec d'écriture est loggé
// mais ne fait pas échouer la mutation principale.
func (s *EquipmentService) recordHistory(ctx context.Context, equipmentID, action, description, performedBy string) {
	err := s.repo.AddHistory(ctx, entities.EquipmentHistory{
		ID:          uuid.NewString(),
		EquipmentID: equipmentID,
		Action:      action,
		Description: description,
		PerformedBy: performedBy,
		Date:        time.Now(),
	})
	if err != nil {
		s.logger.Error("écriture de l'historique échouée",
			zap.String("equipmentID", equipmentID), zap.Error(err))
	}
}
