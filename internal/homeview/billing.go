package homeview

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
)

// BillingInfo carries the two independent billing-visibility flags. They
// are derived from different conditions and must never be collapsed into
// one.
type BillingInfo struct {
	ShowBilling bool
	ShowPlans   bool
}

// BillingPolicy decides billing/plan visibility for a session.
type BillingPolicy struct {
	store domain.BillingStore
}

// NewBillingPolicy creates a new BillingPolicy instance.
func NewBillingPolicy(store domain.BillingStore) *BillingPolicy {
	return &BillingPolicy{store: store}
}

// Evaluate computes the billing flags for an optional identity.
//
// ShowBilling requires: corporate enabled, an identity with billing access,
// an existing customer record for the realm, and either a pending
// sponsorship or at least one plan. A realm without a customer record has
// nothing billing-related to show; that is not an error.
//
// ShowPlans requires: corporate enabled, a non-guest identity, and the realm
// being on the Limited plan.
func (p *BillingPolicy) Evaluate(ctx context.Context, user *models.User, realm *models.Realm, corporateEnabled bool) (BillingInfo, error) {
	var info BillingInfo
	if !corporateEnabled || user == nil {
		return info, nil
	}

	if user.HasBillingAccess {
		customer, err := p.store.CustomerForRealm(ctx, realm.ID)
		if err != nil {
			return BillingInfo{}, fmt.Errorf("failed to look up billing customer: %w", err)
		}
		if customer != nil {
			if customer.SponsorshipPending {
				info.ShowBilling = true
			} else {
				hasPlan, err := p.store.HasAnyPlan(ctx, customer)
				if err != nil {
					return BillingInfo{}, fmt.Errorf("failed to look up customer plans: %w", err)
				}
				info.ShowBilling = hasPlan
			}
		}
	}

	if !user.IsGuest && realm.PlanType == models.PlanLimited {
		info.ShowPlans = true
	}

	return info, nil
}
