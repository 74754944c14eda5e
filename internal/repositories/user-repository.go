package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"parc-info/internal/authz"
	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

const userColumns = "id, email, password_hash, first_name, last_name, role, is_active, created_at, updated_at"

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, params utils.ListParams) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, d dto.CreateUserDTO, passwordHash string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, d dto.UpdateUserDTO, passwordHash string) (*entities.User, error)
	UpdateProfile(ctx context.Context, id string, d dto.UpdateProfileDTO) (*entities.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row interface{ Scan(...any) error }) (*entities.User, error) {
	var u entities.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	u.Role = authz.ParseRole(role)
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, params utils.ListParams) ([]entities.User, uint64, error) {
	searchCols := []string{"email", "first_name", "last_name"}
	filterCols := map[string]string{"role": "role", "isActive": "is_active"}
	sortCols := map[string]string{"created_at": "created_at", "email": "email"}

	query, args, err := applyListParams(
		psql.Select(userColumns).From("users"),
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

	var users []entities.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	countQuery, countArgs, err := applyCountParams(
		psql.Select("COUNT(*)").From("users"),
		params, searchCols, filterCols,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) FindUser(ctx context.Context, id string) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (r *UserRepository) CreateUser(ctx context.Context, d dto.CreateUserDTO, passwordHash string) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		uuid.NewString(), d.Email, passwordHash, d.FirstName, d.LastName, d.Role, d.IsActive,
	))
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, d dto.UpdateUserDTO, passwordHash string) (*entities.User, error) {
	// passwordHash vide => mot de passe inchangé
	return scanUser(r.storage.QueryRow(ctx, `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, role = $4, is_active = $5,
		    password_hash = CASE WHEN $6 = '' THEN password_hash ELSE $6 END,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING `+userColumns,
		d.Email, d.FirstName, d.LastName, d.Role, d.IsActive, passwordHash, id,
	))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, d dto.UpdateProfileDTO) (*entities.User, error) {
	// Le rôle n'est jamais modifiable via le profil.
	return scanUser(r.storage.QueryRow(ctx, `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+userColumns,
		d.Email, d.FirstName, d.LastName, id,
	))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2",
		passwordHash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}
