package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/pkg/utils"
)

type stubEquipmentRepo struct {
	existing *entities.Equipment
	updated  *entities.Equipment
	history  []entities.EquipmentHistory
}

func (s *stubEquipmentRepo) GetEquipments(ctx context.Context, params utils.ListParams) ([]entities.Equipment, uint64, error) {
	return nil, 0, nil
}

func (s *stubEquipmentRepo) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.existing, nil
}

func (s *stubEquipmentRepo) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	return s.updated, nil
}

func (s *stubEquipmentRepo) UpdateEquipment(ctx context.Context, id string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return s.updated, nil
}

func (s *stubEquipmentRepo) DeleteEquipment(ctx context.Context, id string) error { return nil }

func (s *stubEquipmentRepo) GetHistory(ctx context.Context, equipmentID string) ([]entities.EquipmentHistory, error) {
	return s.history, nil
}

func (s *stubEquipmentRepo) AddHistory(ctx context.Context, h entities.EquipmentHistory) error {
	s.history = append(s.history, h)
	return nil
}

func updateEquipment(t *testing.T, repo *stubEquipmentRepo) {
	t.Helper()
	svc := NewEquipmentService(repo, zap.NewNop())
	_, err := svc.UpdateEquipment(context.Background(), "eq1", "u1", dto.UpdateEquipmentDTO{})
	require.NoError(t, err)
}

func TestUpdateEquipmentOutOfOrderRecordsRemoval(t *testing.T) {
	repo := &stubEquipmentRepo{
		existing: &entities.Equipment{ID: "eq1", Status: entities.EquipmentStatusInService},
		updated:  &entities.Equipment{ID: "eq1", Status: entities.EquipmentStatusOutOfOrder},
	}

	updateEquipment(t, repo)

	require.Len(t, repo.history, 1)
	assert.Equal(t, entities.HistoryActionRemoval, repo.history[0].Action)
}

func TestUpdateEquipmentMaintenanceRecordsMaintenance(t *testing.T) {
	repo := &stubEquipmentRepo{
		existing: &entities.Equipment{ID: "eq1", Status: entities.EquipmentStatusInService},
		updated:  &entities.Equipment{ID: "eq1", Status: entities.EquipmentStatusMaintenance},
	}

	updateEquipment(t, repo)

	require.Len(t, repo.history, 1)
	assert.Equal(t, entities.HistoryActionMaintenance, repo.history[0].Action)
}

func TestUpdateEquipmentAssigneeChangeRecordsAssignment(t *testing.T) {
	repo := &stubEquipmentRepo{
		existing: &entities.Equipment{ID: "eq1", Status: entities.EquipmentStatusInService},
		updated: &entities.Equipment{
			ID: "eq1", Status: entities.EquipmentStatusInService,
			AssignedTo: null.StringFrom("e1"),
		},
	}

	updateEquipment(t, repo)

	require.Len(t, repo.history, 1)
	assert.Equal(t, entities.HistoryActionAssignment, repo.history[0].Action)
	assert.Equal(t, "u1", repo.history[0].PerformedBy)
}
