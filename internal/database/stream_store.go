package database

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// StreamStore implements domain.StreamStore on SurrealDB.
type StreamStore struct {
	db *surrealdb.DB
}

// NewStreamStore creates a new StreamStore instance.
func NewStreamStore(db *surrealdb.DB) *StreamStore {
	return &StreamStore{db: db}
}

// FindByName looks a stream up by name within a realm.
func (s *StreamStore) FindByName(ctx context.Context, realm *models.Realm, name string) (*models.Stream, error) {
	query := "SELECT * FROM stream WHERE realm = $realm AND name = $name"
	params := map[string]any{
		"realm": realm.ID,
		"name":  name,
	}
	stream, err := QueryOne[models.Stream](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to find stream %q: %w", name, err)
	}
	if stream == nil {
		return nil, domain.ErrStreamNotFound
	}
	return stream, nil
}

// MaxMessageID returns the highest message id addressed to the stream's
// recipient. A stream with no messages reports ok=false, which is an
// ordinary outcome rather than an error.
func (s *StreamStore) MaxMessageID(ctx context.Context, recipient *models.Stream) (int64, bool, error) {
	query := "SELECT * FROM message WHERE recipient = $recipient ORDER BY messageId DESC"
	params := map[string]any{
		"recipient": recipient.RecipientID,
	}
	msg, err := QueryOne[models.Message](ctx, s.db, query, params)
	if err != nil {
		return 0, false, fmt.Errorf("failed to query max message id: %w", err)
	}
	if msg == nil {
		return 0, false, nil
	}
	return msg.MessageID, true, nil
}
