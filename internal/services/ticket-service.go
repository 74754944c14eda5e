package services

import (
	"context"

	"go.uber.org/zap"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/internal/repositories"
	"parc-info/pkg/utils"
)

type TicketServiceInterface interface {
	GetTickets(ctx context.Context, params utils.ListParams) ([]entities.Ticket, uint64, error)
	FindTicket(ctx context.Context, id string) (*entities.Ticket, error)
	CreateTicket(ctx context.Context, createdBy string, d dto.CreateTicketDTO) (*entities.Ticket, error)
	UpdateTicket(ctx context.Context, id string, d dto.UpdateTicketDTO) (*entities.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}

type TicketService struct {
	repo   repositories.TicketRepositoryInterface
	logger *zap.Logger
}

func NewTicketService(repo repositories.TicketRepositoryInterface, logger *zap.Logger) TicketServiceInterface {
	return &TicketService{repo: repo, logger: logger}
}

func (s *TicketService) GetTickets(ctx context.Context, params utils.ListParams) ([]entities.Ticket, uint64, error) {
	return s.repo.GetTickets(ctx, params)
}

func (s *TicketService) FindTicket(ctx context.Context, id string) (*entities.Ticket, error) {
	return s.repo.FindTicket(ctx, id)
}

// CreateTicket ouvre le ticket au statut "ouvert", ou "assigné" si un
// technicien est déjà désigné. Le statut n'est jamais fourni à la création.
func (s *TicketService) CreateTicket(ctx context.Context, createdBy string, d dto.CreateTicketDTO) (*entities.Ticket, error) {
	status := entities.TicketStatusOpen
	if d.AssignedTo.Valid {
		status = entities.TicketStatusAssigned
	}

	created, err := s.repo.CreateTicket(ctx, createdBy, d, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ticket créé", zap.String("ticketID", created.ID), zap.String("status", status))
	return created, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, id string, d dto.UpdateTicketDTO) (*entities.Ticket, error) {
	return s.repo.UpdateTicket(ctx, id, d)
}

func (s *TicketService) DeleteTicket(ctx context.Context, id string) error {
	return s.repo.DeleteTicket(ctx, id)
}
