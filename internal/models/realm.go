package models

import (
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// PlanType identifies the billing plan a realm is on.
type PlanType int

const (
	PlanSelfHosted PlanType = iota + 1
	PlanLimited
	PlanStandard
	PlanStandardFree
)

// Realm represents a tenant/organization boundary. Every user, stream and
// billing record belongs to exactly one realm.
type Realm struct {
	ID               *models.RecordID `json:"id,omitempty"`
	Name             string           `json:"name"`
	Subdomain        string           `json:"subdomain"`
	PlanType         PlanType         `json:"planType"`
	WebathenaEnabled bool             `json:"webathenaEnabled"`
}
