package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parc-info/internal/entities"
	"parc-info/pkg/utils"
)

type stubAlertRepo struct {
	alert   *entities.Alert
	updated string
}

func (s *stubAlertRepo) GetAlerts(ctx context.Context, params utils.ListParams) ([]entities.Alert, uint64, error) {
	return []entities.Alert{*s.alert}, 1, nil
}

func (s *stubAlertRepo) FindAlert(ctx context.Context, id string) (*entities.Alert, error) {
	return s.alert, nil
}

func (s *stubAlertRepo) UpdateAlertStatus(ctx context.Context, id string, status string) (*entities.Alert, error) {
	s.updated = status
	out := *s.alert
	out.Status = status
	return &out, nil
}

func TestAlertStatusMovesForward(t *testing.T) {
	repo := &stubAlertRepo{alert: &entities.Alert{ID: "a1", Status: entities.AlertStatusNew}}
	svc := NewAlertService(repo)

	alert, err := svc.UpdateStatus(context.Background(), "a1", entities.AlertStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entities.AlertStatusInProgress, alert.Status)
	assert.Equal(t, entities.AlertStatusInProgress, repo.updated)
}

func TestAlertStatusNeverMovesBackward(t *testing.T) {
	repo := &stubAlertRepo{alert: &entities.Alert{ID: "a1", Status: entities.AlertStatusRead}}
	svc := NewAlertService(repo)

	_, err := svc.UpdateStatus(context.Background(), "a1", entities.AlertStatusNew)
	require.Error(t, err)
	assert.Empty(t, repo.updated, "aucune écriture ne doit avoir lieu")
}

func TestAlertStatusSameIsNoop(t *testing.T) {
	repo := &stubAlertRepo{alert: &entities.Alert{ID: "a1", Status: entities.AlertStatusInProgress}}
	svc := NewAlertService(repo)

	alert, err := svc.UpdateStatus(context.Background(), "a1", entities.AlertStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entities.AlertStatusInProgress, alert.Status)
	assert.Empty(t, repo.updated)
}

func TestAlertStatusUnknownRejected(t *testing.T) {
	repo := &stubAlertRepo{alert: &entities.Alert{ID: "a1", Status: entities.AlertStatusNew}}
	svc := NewAlertService(repo)

	_, err := svc.UpdateStatus(context.Background(), "a1", "archivée")
	require.Error(t, err)
}
