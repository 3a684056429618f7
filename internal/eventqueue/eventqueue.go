// Package eventqueue provides per-session server-push event queues. A
// registration allocates a queue and returns it together with a snapshot of
// initial server state; anonymous sessions can fetch the same snapshot
// without allocating a queue.
package eventqueue

import (
	"context"

	"github.com/nfrund/remora/internal/models"
)

// InitialState is the server-state payload returned by a registration or a
// one-shot fetch. Keys are a stable contract with the client.
type InitialState map[string]any

// ClientCapabilities declares which optional protocol features the client
// advertises support for. It is passed verbatim to registration.
type ClientCapabilities struct {
	NotificationSettingsNull   bool `json:"notification_settings_null"`
	BulkMessageDeletion        bool `json:"bulk_message_deletion"`
	UserAvatarURLFieldOptional bool `json:"user_avatar_url_field_optional"`
	StreamTypingNotifications  bool `json:"stream_typing_notifications"`
	UserSettingsObject         bool `json:"user_settings_object"`
}

// RegisterOptions configures a queue registration for an authenticated
// session.
type RegisterOptions struct {
	Client         string
	ApplyMarkdown  bool
	ClientGravatar bool
	SlimPresence   bool
	Capabilities   ClientCapabilities
	Narrow         []models.NarrowTerm
	IncludeStreams bool
}

// FetchOptions configures a one-shot initial-state fetch for an anonymous
// session. No queue is allocated on this path.
type FetchOptions struct {
	ClientGravatar             bool
	UserAvatarURLFieldOptional bool
	UserSettingsObject         bool
	SlimPresence               bool
	IncludeSubscribers         bool
	IncludeStreams             bool
}

// Registration is the result of allocating a queue.
type Registration struct {
	QueueID string
	State   InitialState
}

// Client is the contract the snapshot pipeline consumes. The concrete
// implementation is the watermill-backed Registry; tests substitute fakes.
type Client interface {
	// Register allocates a live queue for the user and returns it with the
	// initial state. Failures are fatal for the request.
	Register(ctx context.Context, user *models.User, realm *models.Realm, opts RegisterOptions) (*Registration, error)
	// FetchInitialState returns the initial state without allocating a
	// queue. The returned state carries a nil queue_id.
	FetchInitialState(ctx context.Context, realm *models.Realm, opts FetchOptions) (InitialState, error)
	// PostProcess finalizes a fetched state, stamping whether it is backed
	// by a live queue.
	PostProcess(user *models.User, state InitialState, queueBacked bool)
}
