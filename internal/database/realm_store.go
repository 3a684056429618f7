package database

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// RealmStore implements domain.RealmStore on SurrealDB.
type RealmStore struct {
	db *surrealdb.DB
}

// NewRealmStore creates a new RealmStore instance.
func NewRealmStore(db *surrealdb.DB) *RealmStore {
	return &RealmStore{db: db}
}

// FindBySubdomain looks a realm up by its subdomain.
func (s *RealmStore) FindBySubdomain(ctx context.Context, subdomain string) (*models.Realm, error) {
	query := "SELECT * FROM realm WHERE subdomain = $subdomain"
	realm, err := QueryOne[models.Realm](ctx, s.db, query, map[string]any{"subdomain": subdomain})
	if err != nil {
		return nil, fmt.Errorf("failed to find realm: %w", err)
	}
	if realm == nil {
		return nil, domain.ErrRealmNotFound
	}
	return realm, nil
}

// UserCount returns the number of users registered in the realm.
func (s *RealmStore) UserCount(ctx context.Context, realm *models.Realm) (int, error) {
	query := "SELECT count() AS count FROM user WHERE realm = $realm GROUP ALL"
	row, err := QueryOne[struct {
		Count int `json:"count"`
	}](ctx, s.db, query, map[string]any{"realm": realm.ID})
	if err != nil {
		return 0, fmt.Errorf("failed to count realm users: %w", err)
	}
	if row == nil {
		return 0, nil
	}
	return row.Count, nil
}
