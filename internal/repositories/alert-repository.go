package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"parc-info/internal/entities"
	"parc-info/pkg/utils"
)

const alertColumns = "id, title, description, type, status, priority, created_at, updated_at"

type AlertRepositoryInterface interface {
	GetAlerts(ctx context.Context, params utils.ListParams) ([]entities.Alert, uint64, error)
	FindAlert(ctx context.Context, id string) (*entities.Alert, error)
	UpdateAlertStatus(ctx context.Context, id string, status string) (*entities.Alert, error)
}

type AlertRepository struct {
	storage *pgxpool.Pool
}

func NewAlertRepository(storage *pgxpool.Pool) AlertRepositoryInterface {
	return &AlertRepository{storage: storage}
}

func scanAlert(row interface{ Scan(...any) error }) (*entities.Alert, error) {
	var a entities.Alert
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Type, &a.Status,
		&a.Priority, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

func (r *AlertRepository) GetAlerts(ctx context.Context, params utils.ListParams) ([]entities.Alert, uint64, error) {
	searchCols := []string{"title", "description"}
	filterCols := map[string]string{"type": "type", "status": "status", "priority": "priority"}
	sortCols := map[string]string{"created_at": "created_at", "priority": "priority"}

	query, args, err := applyListParams(
		psql.Select(alertColumns).From("alerts"),
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

	var alerts []entities.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, 0, err
		}
		alerts = append(alerts, *a)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("alerts"),
		params, searchCols, filterCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

func (r *AlertRepository) FindAlert(ctx context.Context, id string) (*entities.Alert, error) {
	return scanAlert(r.storage.QueryRow(ctx,
		"SELECT "+alertColumns+" FROM alerts WHERE id = $1", id))
}

func (r *AlertRepository) UpdateAlertStatus(ctx context.Context, id string, status string) (*entities.Alert, error) {
	return scanAlert(r.storage.QueryRow(ctx, `
		UPDATE alerts SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+alertColumns,
		status, id,
	))
}
