package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"smarak/internal/db"
	apperrors "smarak/internal/errors"

	"github.com/lib/pq"
)

type UserRepository interface {
	GetByEmail(email string) (*db.User, error)
	GetByID(id int) (*db.User, error)
	Create(user *db.User) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(database *sql.DB) UserRepository {
	return &userRepository{db: database}
}

func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	var user db.User
	err := r.db.QueryRow(
		`SELECT id, name, email, password_hash, is_admin, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(id int) (*db.User, error) {
	var user db.User
	err := r.db.QueryRow(
		`SELECT id, name, email, password_hash, is_admin, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Create(user *db.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Name, user.Email, user.PasswordHash, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}
