package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/pkg/utils"
)

type stubMaintenanceRepo struct {
	createdStatus string
}

func (s *stubMaintenanceRepo) GetSchedules(ctx context.Context, params utils.ListParams) ([]entities.MaintenanceSchedule, uint64, error) {
	return nil, 0, nil
}

func (s *stubMaintenanceRepo) FindSchedule(ctx context.Context, id string) (*entities.MaintenanceSchedule, error) {
	return &entities.MaintenanceSchedule{ID: id, Status: entities.MaintenanceStatusDone}, nil
}

func (s *stubMaintenanceRepo) CreateSchedule(ctx context.Context, d dto.CreateMaintenanceDTO) (*entities.MaintenanceSchedule, error) {
	s.createdStatus = d.Status
	return &entities.MaintenanceSchedule{ID: "m1", Status: d.Status, StartDate: d.StartDate, EndDate: d.EndDate}, nil
}

func (s *stubMaintenanceRepo) UpdateSchedule(ctx context.Context, id string, d dto.UpdateMaintenanceDTO) (*entities.MaintenanceSchedule, error) {
	return &entities.MaintenanceSchedule{ID: id, Status: d.Status}, nil
}

func (s *stubMaintenanceRepo) DeleteSchedule(ctx context.Context, id string) error { return nil }

func validMaintenance() dto.CreateMaintenanceDTO {
	return dto.CreateMaintenanceDTO{
		Type:        entities.MaintenanceTypePreventive,
		Title:       "Nettoyage serveurs",
		Description: "Dépoussiérage de la baie",
		StartDate:   "2026-04-01",
		EndDate:     "2026-04-02",
		Status:      "planifié",
	}
}

func TestCreateScheduleNormalizesAccentedStatus(t *testing.T) {
	repo := &stubMaintenanceRepo{}
	svc := NewMaintenanceService(repo)

	schedule, err := svc.CreateSchedule(context.Background(), validMaintenance())
	require.NoError(t, err)
	assert.Equal(t, entities.MaintenanceStatusPlanned, repo.createdStatus)
	assert.Equal(t, "Planifié", schedule.StatusLabel)
}

func TestCreateScheduleAcceptsCanonicalStatus(t *testing.T) {
	repo := &stubMaintenanceRepo{}
	svc := NewMaintenanceService(repo)

	d := validMaintenance()
	d.Status = "en_cours"
	_, err := svc.CreateSchedule(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, entities.MaintenanceStatusInProgress, repo.createdStatus)
}

func TestCreateScheduleRejectsUnknownStatus(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{})

	d := validMaintenance()
	d.Status = "suspendu"
	_, err := svc.CreateSchedule(context.Background(), d)
	require.Error(t, err)
}

func TestCreateScheduleRejectsEndBeforeStart(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{})

	d := validMaintenance()
	d.StartDate = "2026-04-02"
	d.EndDate = "2026-04-01"
	_, err := svc.CreateSchedule(context.Background(), d)
	require.Error(t, err)
}

func TestCreateScheduleRejectsEqualDates(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{})

	d := validMaintenance()
	d.EndDate = d.StartDate
	_, err := svc.CreateSchedule(context.Background(), d)
	require.Error(t, err)
}
