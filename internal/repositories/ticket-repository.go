package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

const ticketColumns = "id, title, description, created_by, assigned_to, status, priority, created_at, updated_at"

type TicketRepositoryInterface interface {
	GetTickets(ctx context.Context, params utils.ListParams) ([]entities.Ticket, uint64, error)
	FindTicket(ctx context.Context, id string) (*entities.Ticket, error)
	CreateTicket(ctx context.Context, createdBy string, d dto.CreateTicketDTO, status string) (*entities.Ticket, error)
	UpdateTicket(ctx context.Context, id string, d dto.UpdateTicketDTO) (*entities.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}

type TicketRepository struct {
	storage *pgxpool.Pool
}

func NewTicketRepository(storage *pgxpool.Pool) TicketRepositoryInterface {
	return &TicketRepository{storage: storage}
}

func scanTicket(row interface{ Scan(...any) error }) (*entities.Ticket, error) {
	var t entities.Ticket
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedBy, &t.AssignedTo,
		&t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &t, nil
}

func (r *TicketRepository) GetTickets(ctx context.Context, params utils.ListParams) ([]entities.Ticket, uint64, error) {
	searchCols := []string{"title", "description"}
	filterCols := map[string]string{
		"status": "status", "priority": "priority",
		"createdBy": "created_by", "assignedTo": "assigned_to",
	}
	sortCols := map[string]string{"created_at": "created_at", "priority": "priority", "status": "status"}

	query, args, err := applyListParams(
		psql.Select(ticketColumns).From("tickets"),
		params, searchCols, filterCols, sortCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tickets []entities.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, *t)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("tickets"),
		params, searchCols, filterCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) FindTicket(ctx context.Context, id string) (*entities.Ticket, error) {
	return scanTicket(r.storage.QueryRow(ctx,
		"SELECT "+ticketColumns+" FROM tickets WHERE id = $1", id))
}

func (r *TicketRepository) CreateTicket(ctx context.Context, createdBy string, d dto.CreateTicketDTO, status string) (*entities.Ticket, error) {
	return scanTicket(r.storage.QueryRow(ctx, `
		INSERT INTO tickets (id, title, description, created_by, assigned_to, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+ticketColumns,
		uuid.NewString(), d.Title, d.Description, createdBy, d.AssignedTo, status, d.Priority,
	))
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, id string, d dto.UpdateTicketDTO) (*entities.Ticket, error) {
	return scanTicket(r.storage.QueryRow(ctx, `
		UPDATE tickets
		SET title = $1, description = $2, assigned_to = $3, status = $4, priority = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+ticketColumns,
		d.Title, d.Description, d.AssignedTo, d.Status, d.Priority, id,
	))
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM tickets WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
