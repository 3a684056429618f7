package database

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/models"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// BillingStore implements domain.BillingStore on SurrealDB. All reads here
// treat missing records as ordinary outcomes: most realms never have a
// billing customer.
type BillingStore struct {
	db *surrealdb.DB
}

// NewBillingStore creates a new BillingStore instance.
func NewBillingStore(db *surrealdb.DB) *BillingStore {
	return &BillingStore{db: db}
}

// CustomerForRealm returns the billing customer attached to a realm, or nil
// when the realm has none.
func (s *BillingStore) CustomerForRealm(ctx context.Context, realmID *surrealmodels.RecordID) (*models.Customer, error) {
	query := "SELECT * FROM customer WHERE realm = $realm"
	customer, err := QueryOne[models.Customer](ctx, s.db, query, map[string]any{"realm": realmID})
	if err != nil {
		return nil, fmt.Errorf("failed to query billing customer: %w", err)
	}
	return customer, nil
}

// HasAnyPlan reports whether at least one plan row exists for the customer.
func (s *BillingStore) HasAnyPlan(ctx context.Context, customer *models.Customer) (bool, error) {
	query := "SELECT * FROM customer_plan WHERE customer = $customer"
	plan, err := QueryOne[models.CustomerPlan](ctx, s.db, query, map[string]any{"customer": customer.ID})
	if err != nil {
		return false, fmt.Errorf("failed to query customer plans: %w", err)
	}
	return plan != nil, nil
}
