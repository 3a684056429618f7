package models

import (
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// Stream represents a named message channel within a realm. Messages are
// addressed to the stream's recipient record, not to the stream directly.
type Stream struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Name        string           `json:"name"`
	RealmID     *models.RecordID `json:"realm,omitempty"`
	RecipientID *models.RecordID `json:"recipient,omitempty"`
}

// Message is the subset of a message record this service reads. The home
// view only ever needs ids for the "latest message in stream" lookup.
type Message struct {
	ID          *models.RecordID `json:"id,omitempty"`
	MessageID   int64            `json:"messageId"`
	RecipientID *models.RecordID `json:"recipient,omitempty"`
	SentAt      time.Time        `json:"sentAt"`
}
