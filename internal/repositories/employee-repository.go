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

const employeeColumns = "id, name, email, department, position, created_at, updated_at"

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, params utils.ListParams) ([]entities.Employee, uint64, error)
	FindEmployee(ctx context.Context, id string) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, d dto.CreateEmployeeDTO) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id string, d dto.UpdateEmployeeDTO) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
}

func NewEmployeeRepository(storage *pgxpool.Pool) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage}
}

func scanEmployee(row interface{ Scan(...any) error }) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &e, nil
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context, params utils.ListParams) ([]entities.Employee, uint64, error) {
	searchCols := []string{"name", "email", "department"}
	filterCols := map[string]string{"department": "department", "position": "position"}
	sortCols := map[string]string{"created_at": "created_at", "name": "name"}

	query, args, err := applyListParams(
		psql.Select(employeeColumns).From("employees"),
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

	var employees []entities.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *e)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("employees"),
		params, searchCols, filterCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	return scanEmployee(r.storage.QueryRow(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE id = $1", id))
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, d dto.CreateEmployeeDTO) (*entities.Employee, error) {
	return scanEmployee(r.storage.QueryRow(ctx, `
		INSERT INTO employees (id, name, email, department, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+employeeColumns,
		uuid.NewString(), d.Name, d.Email, d.Department, d.Position,
	))
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id string, d dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	return scanEmployee(r.storage.QueryRow(ctx, `
		UPDATE employees
		SET name = $1, email = $2, department = $3, position = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+employeeColumns,
		d.Name, d.Email, d.Department, d.Position, id,
	))
}

// DeleteEmployee ne touche pas aux équipements assignés: la référence est
// faible, le nettoyage référentiel n'est pas la responsabilité de ce dépôt.
func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
