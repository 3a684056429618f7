package homeview

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
)

// ReadStateResolver derives the "furthest read" timestamp for a session.
type ReadStateResolver struct {
	activities domain.ActivityStore
	now        func() time.Time
}

// NewReadStateResolver creates a new ReadStateResolver instance.
func NewReadStateResolver(activities domain.ActivityStore) *ReadStateResolver {
	return &ReadStateResolver{
		activities: activities,
		now:        time.Now,
	}
}

// FurthestReadTime returns the UTC epoch seconds of the user's most recent
// read-flag update. Anonymous sessions are defined as caught up to now, so
// they always get the current time. An authenticated user with no read-flag
// activity gets nil, meaning "never read anything" — a different state than
// "caught up now".
func (r *ReadStateResolver) FurthestReadTime(ctx context.Context, user *models.User) (*int64, error) {
	if user == nil {
		ts := r.now().Unix()
		return &ts, nil
	}

	activity, err := r.activities.LatestUpdateMessageFlags(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve furthest read time: %w", err)
	}
	if activity == nil {
		return nil, nil
	}

	ts := activity.LastVisit.UTC().Unix()
	return &ts, nil
}
