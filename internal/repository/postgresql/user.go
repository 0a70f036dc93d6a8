package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/humbingo/hrms-backend-go/internal/domain/user"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (u *userRepository) Create(ctx context.Context, usr user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	usr.ID = uuid.NewString()

	query := `
		INSERT INTO users (id, email, password_hash, is_admin, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		usr.ID,
		usr.Email,
		usr.PasswordHash,
		usr.IsAdmin,
		usr.EmployeeID,
	).Scan(&usr.CreatedAt, &usr.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUserEmailTaken
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return usr, nil
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, is_admin, employee_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.IsAdmin, &usr.EmployeeID,
		&usr.CreatedAt, &usr.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return usr, nil
}

// GetByEmail implements user.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, is_admin, employee_id, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.IsAdmin, &usr.EmployeeID,
		&usr.CreatedAt, &usr.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No user with this email
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &usr, nil
}

// UpdatePassword implements user.UserRepository.
func (u *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
