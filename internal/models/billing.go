package models

import (
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// Customer is the billing record attached to a realm. Most realms never have
// one; its absence means there is nothing billing-related to show.
type Customer struct {
	ID                 *models.RecordID `json:"id,omitempty"`
	RealmID            *models.RecordID `json:"realm,omitempty"`
	SponsorshipPending bool             `json:"sponsorshipPending"`
}

// CustomerPlan is a subscription plan row belonging to a customer.
type CustomerPlan struct {
	ID         *models.RecordID `json:"id,omitempty"`
	CustomerID *models.RecordID `json:"customer,omitempty"`
	Status     string           `json:"status"`
}
