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

const licenseColumns = "id, name, vendor, type, license_key, max_users, current_users, cost, expiry_date, created_at, updated_at"

type LicenseRepositoryInterface interface {
	GetLicenses(ctx context.Context, params utils.ListParams) ([]entities.License, uint64, error)
	FindLicense(ctx context.Context, id string) (*entities.License, error)
	CreateLicense(ctx context.Context, d dto.CreateLicenseDTO) (*entities.License, error)
	UpdateLicense(ctx context.Context, id string, d dto.UpdateLicenseDTO) (*entities.License, error)
	DeleteLicense(ctx context.Context, id string) error
	GetExpiringLicenses(ctx context.Context, within time.Duration) ([]entities.License, error)
}

type LicenseRepository struct {
	storage *pgxpool.Pool
}

func NewLicenseRepository(storage *pgxpool.Pool) LicenseRepositoryInterface {
	return &LicenseRepository{storage: storage}
}

func scanLicense(row interface{ Scan(...any) error }) (*entities.License, error) {
	var l entities.License
	err := row.Scan(&l.ID, &l.Name, &l.Vendor, &l.Type, &l.LicenseKey, &l.MaxUsers,
		&l.CurrentUsers, &l.Cost, &l.ExpiryDate, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &l, nil
}

func (r *LicenseRepository) GetLicenses(ctx context.Context, params utils.ListParams) ([]entities.License, uint64, error) {
	searchCols := []string{"name", "vendor"}
	filterCols := map[string]string{"type": "type", "vendor": "vendor"}
	sortCols := map[string]string{"created_at": "created_at", "name": "name", "expiry_date": "expiry_date"}

	query, args, err := applyListParams(
		psql.Select(licenseColumns).From("licenses"),
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

	var licenses []entities.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, 0, err
		}
		licenses = append(licenses, *l)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("licenses"),
		params, searchCols, filterCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return licenses, total, nil
}

func (r *LicenseRepository) FindLicense(ctx context.Context, id string) (*entities.License, error) {
	return scanLicense(r.storage.QueryRow(ctx,
		"SELECT "+licenseColumns+" FROM licenses WHERE id = $1", id))
}

func (r *LicenseRepository) CreateLicense(ctx context.Context, d dto.CreateLicenseDTO) (*entities.License, error) {
	return scanLicense(r.storage.QueryRow(ctx, `
		INSERT INTO licenses (id, name, vendor, type, license_key, max_users, current_users, cost, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+licenseColumns,
		uuid.NewString(), d.Name, d.Vendor, d.Type, d.LicenseKey, d.MaxUsers,
		d.CurrentUsers, d.Cost, d.ExpiryDate,
	))
}

func (r *LicenseRepository) UpdateLicense(ctx context.Context, id string, d dto.UpdateLicenseDTO) (*entities.License, error) {
	return scanLicense(r.storage.QueryRow(ctx, `
		UPDATE licenses
		SET name = $1, vendor = $2, type = $3, license_key = $4, max_users = $5,
		    current_users = $6, cost = $7, expiry_date = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+licenseColumns,
		d.Name, d.Vendor, d.Type, d.LicenseKey, d.MaxUsers, d.CurrentUsers,
		d.Cost, d.ExpiryDate, id,
	))
}

func (r *LicenseRepository) DeleteLicense(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM licenses WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetExpiringLicenses — licences dont l'échéance tombe avant la fin de
// la fenêtre donnée, licences déjà expirées comprises: la vue sert à
// déclencher les renouvellements. Les licences sans date d'expiration
// sont ignorées.
func (r *LicenseRepository) GetExpiringLicenses(ctx context.Context, within time.Duration) ([]entities.License, error) {
	deadline := time.Now().Add(within).Format("2006-01-02")
	rows, err := r.storage.Query(ctx, `
		SELECT `+licenseColumns+`
		FROM licenses
		WHERE expiry_date IS NOT NULL AND expiry_date <= $1
		ORDER BY expiry_date ASC`, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licenses []entities.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, *l)
	}
	return licenses, rows.Err()
}
