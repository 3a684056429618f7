package database

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// UserStore implements domain.UserStore on SurrealDB.
type UserStore struct {
	db *surrealdb.DB
}

// NewUserStore creates a new UserStore instance.
func NewUserStore(db *surrealdb.DB) *UserStore {
	return &UserStore{db: db}
}

// Authenticate resolves a session token to its user record.
func (s *UserStore) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredentials
	}

	query := "SELECT * FROM user WHERE sessionToken = $token AND sessionExpires > time::now()"
	user, err := QueryOne[models.User](ctx, s.db, query, map[string]any{"token": token})
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate token: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// FindUserByEmail looks a user up by email address.
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := "SELECT * FROM user WHERE email = $email"
	user, err := QueryOne[models.User](ctx, s.db, query, map[string]any{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
