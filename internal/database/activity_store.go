package database

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// ActivityStore implements domain.ActivityStore on SurrealDB.
type ActivityStore struct {
	db *surrealdb.DB
}

// NewActivityStore creates a new ActivityStore instance.
func NewActivityStore(db *surrealdb.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// LatestUpdateMessageFlags returns the newest update-message-flags activity
// row for the user, or nil when the user has never updated a read flag.
func (s *ActivityStore) LatestUpdateMessageFlags(ctx context.Context, user *models.User) (*models.UserActivity, error) {
	query := "SELECT * FROM user_activity WHERE user = $user AND query = $query ORDER BY lastVisit DESC"
	params := map[string]any{
		"user":  user.ID,
		"query": models.QueryUpdateMessageFlags,
	}
	activity, err := QueryOne[models.UserActivity](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query user activity: %w", err)
	}
	return activity, nil
}
