package homeview

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
)

// noMessageID is the sentinel written when the narrowed stream has no
// messages. Part of the client contract.
const noMessageID = int64(-1)

// applyNarrowOverride rewrites the snapshot for a narrowed view. It must run
// strictly after the registration/fetch merge so its writes are
// authoritative: in particular it forces desktop notifications off in the
// already-merged user_settings sub-mapping.
func applyNarrowOverride(
	ctx context.Context,
	streams domain.StreamStore,
	snapshot *Snapshot,
	stream *models.Stream,
	topic string,
	terms []models.NarrowTerm,
) error {
	if stream == nil {
		return nil
	}

	// In a narrowed view the initial pointer is just the latest message in
	// the stream.
	maxMessageID, ok, err := streams.MaxMessageID(ctx, stream)
	if err != nil {
		return fmt.Errorf("failed to resolve max message id for stream %q: %w", stream.Name, err)
	}
	if !ok {
		maxMessageID = noMessageID
	}

	snapshot.Set("narrow_stream", stream.Name)
	if topic != "" {
		snapshot.Set("narrow_topic", topic)
	}
	narrow := make([]models.NarrowTerm, 0, len(terms))
	narrow = append(narrow, terms...)
	snapshot.Set("narrow", narrow)
	snapshot.Set("max_message_id", maxMessageID)

	userSettings, ok := snapshotUserSettings(snapshot)
	if !ok {
		return fmt.Errorf("snapshot is missing the user_settings sub-mapping")
	}
	// Narrowed views never show desktop notifications, regardless of what
	// the registration decided.
	userSettings["enable_desktop_notifications"] = false

	return nil
}

// snapshotUserSettings extracts the user_settings sub-mapping from the
// merged snapshot.
func snapshotUserSettings(snapshot *Snapshot) (map[string]any, bool) {
	raw, ok := snapshot.Get("user_settings")
	if !ok {
		return nil, false
	}
	settings, ok := raw.(map[string]any)
	return settings, ok
}
