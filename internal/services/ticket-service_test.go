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

type stubTicketRepo struct {
	createdStatus string
}

func (s *stubTicketRepo) GetTickets(ctx context.Context, params utils.ListParams) ([]entities.Ticket, uint64, error) {
	return nil, 0, nil
}

func (s *stubTicketRepo) FindTicket(ctx context.Context, id string) (*entities.Ticket, error) {
	return &entities.Ticket{ID: id}, nil
}

func (s *stubTicketRepo) CreateTicket(ctx context.Context, createdBy string, d dto.CreateTicketDTO, status string) (*entities.Ticket, error) {
	s.createdStatus = status
	return &entities.Ticket{ID: "t1", CreatedBy: createdBy, Status: status}, nil
}

func (s *stubTicketRepo) UpdateTicket(ctx context.Context, id string, d dto.UpdateTicketDTO) (*entities.Ticket, error) {
	return &entities.Ticket{ID: id, Status: d.Status}, nil
}

func (s *stubTicketRepo) DeleteTicket(ctx context.Context, id string) error { return nil }

func TestCreateTicketOpensUnassigned(t *testing.T) {
	repo := &stubTicketRepo{}
	svc := NewTicketService(repo, zap.NewNop())

	ticket, err := svc.CreateTicket(context.Background(), "u1", dto.CreateTicketDTO{
		Title: "Écran noir", Description: "Rien ne s'affiche", Priority: "haute",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusOpen, ticket.Status)
}

func TestCreateTicketAssignedWhenTechnicianSet(t *testing.T) {
	repo := &stubTicketRepo{}
	svc := NewTicketService(repo, zap.NewNop())

	_, err := svc.CreateTicket(context.Background(), "u1", dto.CreateTicketDTO{
		Title: "Écran noir", Description: "Rien", Priority: "basse",
		AssignedTo: null.StringFrom("tech-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusAssigned, repo.createdStatus)
}
