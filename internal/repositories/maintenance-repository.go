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

const maintenanceColumns = "id, type, title, description, start_date, end_date, status, notes, created_at, updated_at"

type MaintenanceRepositoryInterface interface {
	GetSchedules(ctx context.Context, params utils.ListParams) ([]entities.MaintenanceSchedule, uint64, error)
	FindSchedule(ctx context.Context, id string) (*entities.MaintenanceSchedule, error)
	CreateSchedule(ctx context.Context, d dto.CreateMaintenanceDTO) (*entities.MaintenanceSchedule, error)
	UpdateSchedule(ctx context.Context, id string, d dto.UpdateMaintenanceDTO) (*entities.MaintenanceSchedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

func scanSchedule(row interface{ Scan(...any) error }) (*entities.MaintenanceSchedule, error) {
	var m entities.MaintenanceSchedule
	err := row.Scan(&m.ID, &m.Type, &m.Title, &m.Description, &m.StartDate,
		&m.EndDate, &m.Status, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &m, nil
}

func (r *MaintenanceRepository) GetSchedules(ctx context.Context, params utils.ListParams) ([]entities.MaintenanceSchedule, uint64, error) {
	searchCols := []string{"title", "description"}
	filterCols := map[string]string{"type": "type", "status": "status"}
	sortCols := map[string]string{"created_at": "created_at", "start_date": "start_date"}

	query, args, err := applyListParams(
		psql.Select(maintenanceColumns).From("maintenance_schedules"),
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

	var schedules []entities.MaintenanceSchedule
	for rows.Next() {
		m, err := scanSchedule(rows)
		if err != nil {
			return nil, 0, err
		}
		schedules = append(schedules, *m)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("maintenance_schedules"),
		params, searchCols, filterCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return schedules, total, nil
}

func (r *MaintenanceRepository) FindSchedule(ctx context.Context, id string) (*entities.MaintenanceSchedule, error) {
	return scanSchedule(r.storage.QueryRow(ctx,
		"SELECT "+maintenanceColumns+" FROM maintenance_schedules WHERE id = $1", id))
}

func (r *MaintenanceRepository) CreateSchedule(ctx context.Context, d dto.CreateMaintenanceDTO) (*entities.MaintenanceSchedule, error) {
	return scanSchedule(r.storage.QueryRow(ctx, `
		INSERT INTO maintenance_schedules (id, type, title, description, start_date, end_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+maintenanceColumns,
		uuid.NewString(), d.Type, d.Title, d.Description, d.StartDate, d.EndDate, d.Status, d.Notes,
	))
}

func (r *MaintenanceRepository) UpdateSchedule(ctx context.Context, id string, d dto.UpdateMaintenanceDTO) (*entities.MaintenanceSchedule, error) {
	return scanSchedule(r.storage.QueryRow(ctx, `
		UPDATE maintenance_schedules
		SET type = $1, title = $2, description = $3, start_date = $4, end_date = $5,
		    status = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+maintenanceColumns,
		d.Type, d.Title, d.Description, d.StartDate, d.EndDate, d.Status, d.Notes, id,
	))
}

func (r *MaintenanceRepository) DeleteSchedule(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM maintenance_schedules WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
