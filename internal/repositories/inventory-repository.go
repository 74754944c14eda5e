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

const inventoryColumns = "id, equipment_id, assigned_to, location, last_checked, condition, created_at, updated_at"

type InventoryRepositoryInterface interface {
	GetInventories(ctx context.Context, params utils.ListParams) ([]entities.Inventory, uint64, error)
	FindInventory(ctx context.Context, id string) (*entities.Inventory, error)
	CreateInventory(ctx context.Context, d dto.CreateInventoryDTO) (*entities.Inventory, error)
	UpdateInventory(ctx context.Context, id string, d dto.UpdateInventoryDTO) (*entities.Inventory, error)
	DeleteInventory(ctx context.Context, id string) error
}

type InventoryRepository struct {
	storage *pgxpool.Pool
}

func NewInventoryRepository(storage *pgxpool.Pool) InventoryRepositoryInterface {
	return &InventoryRepository{storage: storage}
}

func scanInventory(row interface{ Scan(...any) error }) (*entities.Inventory, error) {
	var i entities.Inventory
	err := row.Scan(&i.ID, &i.EquipmentID, &i.AssignedTo, &i.Location,
		&i.LastChecked, &i.Condition, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &i, nil
}

func (r *InventoryRepository) GetInventories(ctx context.Context, params utils.ListParams) ([]entities.Inventory, uint64, error) {
	searchCols := []string{"location"}
	filterCols := map[string]string{
		"condition": "condition", "equipmentId": "equipment_id", "assignedTo": "assigned_to",
	}
	sortCols := map[string]string{"created_at": "created_at", "last_checked": "last_checked"}

	query, args, err := applyListParams(
		psql.Select(inventoryColumns).From("inventories"),
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

	var list []entities.Inventory
	for rows.Next() {
		i, err := scanInventory(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *i)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("inventories"),
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

func (r *InventoryRepository) FindInventory(ctx context.Context, id string) (*entities.Inventory, error) {
	return scanInventory(r.storage.QueryRow(ctx,
		"SELECT "+inventoryColumns+" FROM inventories WHERE id = $1", id))
}

func (r *InventoryRepository) CreateInventory(ctx context.Context, d dto.CreateInventoryDTO) (*entities.Inventory, error) {
	return scanInventory(r.storage.QueryRow(ctx, `
		INSERT INTO inventories (id, equipment_id, assigned_to, location, last_checked, condition)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+inventoryColumns,
		uuid.NewString(), d.EquipmentID, d.AssignedTo, d.Location, d.LastChecked, d.Condition,
	))
}

func (r *InventoryRepository) UpdateInventory(ctx context.Context, id string, d dto.UpdateInventoryDTO) (*entities.Inventory, error) {
	return scanInventory(r.storage.QueryRow(ctx, `
		UPDATE inventories
		SET equipment_id = $1, assigned_to = $2, location = $3, last_checked = $4, condition = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+inventoryColumns,
		d.EquipmentID, d.AssignedTo, d.Location, d.LastChecked, d.Condition, id,
	))
}

func (r *InventoryRepository) DeleteInventory(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM inventories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
