package domain

import (
	"context"

	"github.com/nfrund/remora/internal/models"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// These interfaces live in the domain because they are requirements OF the
// domain, not of the database implementation. The snapshot pipeline treats
// all of them as read-only; "not found" is an ordinary outcome and is
// reported as a nil record with a nil error unless noted otherwise.

// UserStore resolves identities for the current session.
type UserStore interface {
	// Authenticate resolves a session token to a user. An invalid or
	// expired token returns ErrInvalidCredentials.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RealmStore reads tenant records.
type RealmStore interface {
	// FindBySubdomain returns ErrRealmNotFound when no realm matches.
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Realm, error)
	// UserCount returns the number of non-bot users in the realm.
	UserCount(ctx context.Context, realm *models.Realm) (int, error)
}

// StreamStore reads stream records and message ids addressed to them.
type StreamStore interface {
	// FindByName returns ErrStreamNotFound when the realm has no stream
	// with that name.
	FindByName(ctx context.Context, realm *models.Realm, name string) (*models.Stream, error)
	// MaxMessageID returns the highest message id addressed to the given
	// recipient, or (0, false, nil) when the recipient has no messages.
	MaxMessageID(ctx context.Context, recipient *models.Stream) (int64, bool, error)
}

// ActivityStore reads the per-user activity log.
type ActivityStore interface {
	// LatestUpdateMessageFlags returns the most recent activity row for the
	// update-message-flags query, or nil when the user has never sent one.
	LatestUpdateMessageFlags(ctx context.Context, user *models.User) (*models.UserActivity, error)
}

// BillingStore reads billing customer and plan records.
type BillingStore interface {
	// CustomerForRealm returns nil when the realm has no billing customer.
	CustomerForRealm(ctx context.Context, realmID *surrealmodels.RecordID) (*models.Customer, error)
	// HasAnyPlan reports whether at least one plan row exists for the customer.
	HasAnyPlan(ctx context.Context, customer *models.Customer) (bool, error)
}

// DeviceStore reads registered second-factor devices.
type DeviceStore interface {
	// DefaultDevice returns nil when the user has no confirmed device.
	DefaultDevice(ctx context.Context, user *models.User) (*models.Device, error)
}
