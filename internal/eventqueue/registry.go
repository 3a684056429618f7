package eventqueue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/nfrund/remora/internal/models"
)

// Queue is one live event queue. Events for the realm are delivered on
// Events until the queue is closed.
type Queue struct {
	ID     string
	UserID string
	Events <-chan *message.Message
	cancel context.CancelFunc
}

// Registry implements Client on a watermill pub/sub. Each registration
// subscribes the new queue to its realm's event topic.
type Registry struct {
	pub message.Publisher
	sub message.Subscriber

	mu     sync.Mutex
	queues map[string]*Queue
}

// NewRegistry creates a Registry backed by an in-memory watermill GoChannel.
func NewRegistry() *Registry {
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	return &Registry{
		pub:    goChannel,
		sub:    goChannel,
		queues: make(map[string]*Queue),
	}
}

// realmTopic is the watermill topic carrying a realm's events.
func realmTopic(realm *models.Realm) string {
	return "events." + realm.Subdomain
}

// Register allocates a queue for the user and subscribes it to the realm's
// event topic.
func (r *Registry) Register(ctx context.Context, user *models.User, realm *models.Realm, opts RegisterOptions) (*Registration, error) {
	if user == nil {
		return nil, fmt.Errorf("register requires an authenticated user")
	}

	queueCtx, cancel := context.WithCancel(context.Background())
	events, err := r.sub.Subscribe(queueCtx, realmTopic(realm))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe event queue: %w", err)
	}

	queue := &Queue{
		ID:     uuid.NewString(),
		UserID: user.Email,
		Events: events,
		cancel: cancel,
	}

	r.mu.Lock()
	r.queues[queue.ID] = queue
	r.mu.Unlock()

	state := buildInitialState(user, realm, stateOptions{
		clientGravatar:     opts.ClientGravatar,
		slimPresence:       opts.SlimPresence,
		userSettingsObject: opts.Capabilities.UserSettingsObject,
	})
	state["queue_id"] = queue.ID

	slog.Debug("Registered event queue", "queue_id", queue.ID, "user", user.Email, "realm", realm.Subdomain)

	return &Registration{QueueID: queue.ID, State: state}, nil
}

// FetchInitialState returns the initial state without allocating a queue.
func (r *Registry) FetchInitialState(ctx context.Context, realm *models.Realm, opts FetchOptions) (InitialState, error) {
	state := buildInitialState(nil, realm, stateOptions{
		clientGravatar:     opts.ClientGravatar,
		slimPresence:       opts.SlimPresence,
		userSettingsObject: opts.UserSettingsObject,
	})
	state["queue_id"] = nil
	return state, nil
}

// PostProcess stamps whether the state is backed by a live queue.
func (r *Registry) PostProcess(user *models.User, state InitialState, queueBacked bool) {
	state["queue_backed"] = queueBacked
}

// Publish delivers an event to every queue registered for the realm.
func (r *Registry) Publish(ctx context.Context, realm *models.Realm, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return r.pub.Publish(realmTopic(realm), msg)
}

// Delete tears down a queue. Unknown ids are a no-op so retried deletes
// stay idempotent.
func (r *Registry) Delete(queueID string) {
	r.mu.Lock()
	queue, ok := r.queues[queueID]
	if ok {
		delete(r.queues, queueID)
	}
	r.mu.Unlock()

	if ok {
		queue.cancel()
	}
}

// Close shuts down every queue and the underlying pub/sub.
func (r *Registry) Close() error {
	r.mu.Lock()
	for id, queue := range r.queues {
		queue.cancel()
		delete(r.queues, id)
	}
	r.mu.Unlock()
	return r.sub.Close()
}
