package models

import (
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// QueryUpdateMessageFlags is the activity query name recorded when a client
// updates message read flags. The latest such row is what "furthest read
// time" is derived from.
const QueryUpdateMessageFlags = "update_message_flags"

// UserActivity is one row of the per-user, per-query activity log.
type UserActivity struct {
	ID        *models.RecordID `json:"id,omitempty"`
	UserID    *models.RecordID `json:"user,omitempty"`
	Query     string           `json:"query"`
	Count     int              `json:"count"`
	LastVisit time.Time        `json:"lastVisit"`
}

// Device is a registered second-factor device for a user.
type Device struct {
	ID        *models.RecordID `json:"id,omitempty"`
	UserID    *models.RecordID `json:"user,omitempty"`
	Name      string           `json:"name"`
	Confirmed bool             `json:"confirmed"`
}
