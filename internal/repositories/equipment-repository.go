package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

const equipmentColumns = "id, type, model, serial_number, purchase_date, status, assigned_to, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, params utils.ListParams) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
	GetHistory(ctx context.Context, equipmentID string) ([]entities.EquipmentHistory, error)
	AddHistory(ctx context.Context, h entities.EquipmentHistory) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row interface{ Scan(...any) error }) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(&e.ID, &e.Type, &e.Model, &e.SerialNumber, &e.PurchaseDate,
		&e.Status, &e.AssignedTo, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, params utils.ListParams) ([]entities.Equipment, uint64, error) {
	searchCols := []string{"model", "serial_number"}
	filterCols := map[string]string{"type": "type", "status": "status", "assignedTo": "assigned_to"}
	sortCols := map[string]string{"created_at": "created_at", "model": "model", "purchase_date": "purchase_date"}

	query, args, err := applyListParams(
		psql.Select(equipmentColumns).From("equipments"),
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

	var list []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("equipments"),
		params, searchCols, filterCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return scanEquipment(r.storage.QueryRow(ctx,
		"SELECT "+equipmentColumns+" FROM equipments WHERE id = $1", id))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	return scanEquipment(r.storage.QueryRow(ctx, `
		INSERT INTO equipments (id, type, model, serial_number, purchase_date, status, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+equipmentColumns,
		uuid.NewString(), d.Type, d.Model, d.SerialNumber, d.PurchaseDate, d.Status, d.AssignedTo,
	))
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	// PUT = remplacement complet, le renvoi des mêmes données est sans effet.
	return scanEquipment(r.storage.QueryRow(ctx, `
		UPDATE equipments
		SET type = $1, model = $2, serial_number = $3, purchase_date = $4,
		    status = $5, assigned_to = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+equipmentColumns,
		d.Type, d.Model, d.SerialNumber, d.PurchaseDate, d.Status, d.AssignedTo, id,
	))
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) GetHistory(ctx context.Context, equipmentID string) ([]entities.EquipmentHistory, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, equipment_id, action, description, performed_by, date, created_at, updated_at
		FROM equipment_history
		WHERE equipment_id = $1
		ORDER BY date DESC`, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []entities.EquipmentHistory
	for rows.Next() {
		var h entities.EquipmentHistory
		if err := rows.Scan(&h.ID, &h.EquipmentID, &h.Action, &h.Description,
			&h.PerformedBy, &h.Date, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (r *EquipmentRepository) AddHistory(ctx context.Context, h entities.EquipmentHistory) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Date.IsZero() {
		h.Date = time.Now()
	}
	_, err := r.storage.Exec(ctx, `
		INSERT INTO equipment_history (id, equipment_id, action, description, performed_by, date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, h.EquipmentID, h.Action, h.Description, h.PerformedBy, h.Date)
	return err
}
