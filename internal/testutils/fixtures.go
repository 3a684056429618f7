package testutils

import (
	"github.com/google/uuid"
	"github.com/nfrund/remora/internal/models"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// NewTestRecordID creates a new RecordID for testing purposes.
func NewTestRecordID(table string) *surrealmodels.RecordID {
	id := surrealmodels.NewRecordID(table, uuid.NewString())
	return &id
}

// NewTestRealm creates a realm fixture on the given plan.
func NewTestRealm(plan models.PlanType) *models.Realm {
	return &models.Realm{
		ID:        NewTestRecordID("realm"),
		Name:      "Test Realm",
		Subdomain: "testrealm",
		PlanType:  plan,
	}
}

// NewTestUser creates a user fixture belonging to the realm.
func NewTestUser(realm *models.Realm) *models.User {
	return &models.User{
		ID:          NewTestRecordID("user"),
		Email:       "user@example.com",
		Name:        "Test User",
		RealmID:     realm.ID,
		ColorScheme: models.ColorSchemeAutomatic,
	}
}

// NewTestStream creates a stream fixture belonging to the realm.
func NewTestStream(realm *models.Realm, name string) *models.Stream {
	return &models.Stream{
		ID:          NewTestRecordID("stream"),
		Name:        name,
		RealmID:     realm.ID,
		RecipientID: NewTestRecordID("recipient"),
	}
}
