// users.go handles user-related database operations.
package database

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
)

// ErrDuplicate is returned when a username or email is already registered.
var ErrDuplicate = errors.New("already exists")

// CreateUser inserts a new user record.
func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)

	// 23505 is unique_violation on the username or email index.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

// GetUserByUsername retrieves a user by username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := db.GetContext(ctx, &u, `SELECT * FROM users WHERE username = $1`, username); err != nil {
		return nil, notFound("user", err)
	}
	return &u, nil
}

// GetUserByID retrieves a user by ID.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := db.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id); err != nil {
		return nil, notFound("user", err)
	}
	return &u, nil
}
