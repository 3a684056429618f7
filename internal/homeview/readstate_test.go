package homeview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfrund/remora/internal/models"
	"github.com/nfrund/remora/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFurthestReadTimeAnonymous(t *testing.T) {
	resolver := NewReadStateResolver(&fakeActivityStore{})

	before := time.Now().Unix()
	ts, err := resolver.FurthestReadTime(context.Background(), nil)
	after := time.Now().Unix()

	require.NoError(t, err)
	// Anonymous sessions are "caught up to now": never nil, always inside
	// the test's execution window.
	require.NotNil(t, ts)
	assert.GreaterOrEqual(t, *ts, before)
	assert.LessOrEqual(t, *ts, after)
}

func TestFurthestReadTimeNoActivity(t *testing.T) {
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	resolver := NewReadStateResolver(&fakeActivityStore{activity: nil})

	ts, err := resolver.FurthestReadTime(context.Background(), user)
	require.NoError(t, err)
	// "Never read anything" is nil, distinct from "caught up now".
	assert.Nil(t, ts)
}

func TestFurthestReadTimeFromActivity(t *testing.T) {
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	lastVisit := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	resolver := NewReadStateResolver(&fakeActivityStore{
		activity: &models.UserActivity{
			Query:     models.QueryUpdateMessageFlags,
			LastVisit: lastVisit,
		},
	})

	ts, err := resolver.FurthestReadTime(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, lastVisit.Unix(), *ts)
}

func TestFurthestReadTimeStoreErrorPropagates(t *testing.T) {
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	resolver := NewReadStateResolver(&fakeActivityStore{err: errors.New("store down")})

	_, err := resolver.FurthestReadTime(context.Background(), user)
	assert.Error(t, err)
}
