package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juneandco/aisle/internal/database"
	"github.com/juneandco/aisle/internal/model"
)

// UserRepository handles user account storage
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user account. Returns database.ErrDuplicate when a
// user with the same email already exists.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE type::thing('user', $id) CONTENT {
			email: $email,
			name: $name,
			password_hash: $password_hash,
			role: $role,
			created_on: time::now()
		}`
	vars := map[string]interface{}{
		"id":            user.ID,
		"email":         user.Email,
		"name":          user.Name,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	row, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeUser(row)
}

// GetByID retrieves a user by id. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::thing('user', $id)`
	vars := map[string]interface{}{"id": id}

	row, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeUser(row)
}

// decodeUser extracts fields individually rather than via the JSON round
// trip: created_on may arrive as a driver datetime type that encoding/json
// cannot map onto time.Time.
func decodeUser(row interface{}) (*model.User, error) {
	m, ok := row.(map[string]interface{})
	if !ok {
		return nil, errRowFormat
	}

	user := &model.User{
		ID:           extractKey(m["id"]),
		Email:        getString(m, "email"),
		Name:         getString(m, "name"),
		PasswordHash: getString(m, "password_hash"),
		Role:         getString(m, "role"),
	}
	if t := getTime(m, "created_on"); t != nil {
		user.CreatedOn = *t
	} else {
		user.CreatedOn = time.Time{}
	}
	return user, nil
}
