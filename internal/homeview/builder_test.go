package homeview

import (
	"context"
	"errors"
	"testing"

	"github.com/nfrund/remora/internal/eventqueue"
	"github.com/nfrund/remora/internal/models"
	"github.com/nfrund/remora/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type builderFixture struct {
	queues    *fakeQueueClient
	billing   *fakeBillingStore
	activity  *fakeActivityStore
	streams   *fakeStreamStore
	devices   *fakeDeviceFinder
	localizer *fakeLocalizer
	settings  Settings
}

func newBuilderFixture() *builderFixture {
	return &builderFixture{
		queues:    newFakeQueueClient("queue-123"),
		billing:   &fakeBillingStore{},
		activity:  &fakeActivityStore{},
		streams:   &fakeStreamStore{},
		devices:   &fakeDeviceFinder{},
		localizer: newFakeLocalizer("de"),
		settings:  Settings{LoginPageURL: "/login/", AppsPageURL: "/apps/"},
	}
}

func (f *builderFixture) builder() *Builder {
	return NewBuilder(
		f.queues,
		f.localizer,
		NewBillingPolicy(f.billing),
		NewReadStateResolver(f.activity),
		f.streams,
		f.devices,
		f.settings,
	)
}

func TestBuildPageParamsSpectator(t *testing.T) {
	f := newBuilderFixture()
	realm := testutils.NewTestRealm(models.PlanStandard)

	queueID, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{Realm: realm})
	require.NoError(t, err)

	// No live queue is allocated for spectators.
	assert.Empty(t, queueID)
	assert.True(t, f.queues.fetched)
	assert.False(t, f.queues.registered)
	assert.True(t, f.queues.postProcessed)

	isSpectator, _ := snapshot.Get("is_spectator")
	assert.Equal(t, true, isSpectator)

	noQueue, _ := snapshot.Get("no_event_queue")
	assert.Equal(t, true, noQueue)

	botTypes, _ := snapshot.Get("bot_types")
	assert.Equal(t, []BotTypeInfo{}, botTypes)

	// Spectators are caught up to now.
	furthest, _ := snapshot.Get("furthest_read_time")
	require.NotNil(t, furthest)
	assert.NotNil(t, furthest.(*int64))

	showBilling, _ := snapshot.Get("show_billing")
	assert.Equal(t, false, showBilling)
	showPlans, _ := snapshot.Get("show_plans")
	assert.Equal(t, false, showPlans)
}

func TestBuildPageParamsAuthenticated(t *testing.T) {
	f := newBuilderFixture()
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	queueID, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{
		User:  user,
		Realm: realm,
	})
	require.NoError(t, err)

	assert.Equal(t, "queue-123", queueID)
	assert.True(t, f.queues.registered)
	assert.False(t, f.queues.fetched)

	isSpectator, _ := snapshot.Get("is_spectator")
	assert.Equal(t, false, isSpectator)

	mergedQueueID, _ := snapshot.Get("queue_id")
	assert.Equal(t, "queue-123", mergedQueueID)
}

func TestBuildPageParamsGuestExcludedFromPlans(t *testing.T) {
	// Guests never see plans even when the plan type matches.
	f := newBuilderFixture()
	f.settings.CorporateEnabled = true

	realm := testutils.NewTestRealm(models.PlanLimited)
	user := testutils.NewTestUser(realm)
	user.IsGuest = true

	_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{User: user, Realm: realm})
	require.NoError(t, err)

	showPlans, _ := snapshot.Get("show_plans")
	assert.Equal(t, false, showPlans)
}

func TestBuildPageParamsPlansWithoutBillingAccess(t *testing.T) {
	f := newBuilderFixture()
	f.settings.CorporateEnabled = true

	realm := testutils.NewTestRealm(models.PlanLimited)
	user := testutils.NewTestUser(realm) // no billing access

	_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{User: user, Realm: realm})
	require.NoError(t, err)

	showBilling, _ := snapshot.Get("show_billing")
	assert.Equal(t, false, showBilling)

	showPlans, _ := snapshot.Get("show_plans")
	assert.Equal(t, true, showPlans)
}

func TestBuildPageParamsNarrowOverridesMerge(t *testing.T) {
	f := newBuilderFixture()
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	stream := testutils.NewTestStream(realm, "design")
	// Messages [5, 9, 3] in the stream: max id is 9.
	f.streams.stream = stream
	f.streams.maxMessageID = 9
	f.streams.hasMessages = true

	terms := []models.NarrowTerm{{Operator: "stream", Operand: "design"}}
	_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{
		User:         user,
		Realm:        realm,
		Narrow:       terms,
		NarrowStream: stream,
	})
	require.NoError(t, err)

	maxID, _ := snapshot.Get("max_message_id")
	assert.Equal(t, int64(9), maxID)

	name, _ := snapshot.Get("narrow_stream")
	assert.Equal(t, "design", name)

	// The override runs after the merge, so it wins over whatever the
	// registration put into user_settings.
	settings, ok := snapshotUserSettings(snapshot)
	require.True(t, ok)
	assert.Equal(t, false, settings["enable_desktop_notifications"])
}

func TestBuildPageParamsTranslationDataIsLast(t *testing.T) {
	f := newBuilderFixture()
	realm := testutils.NewTestRealm(models.PlanStandard)

	_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{Realm: realm})
	require.NoError(t, err)

	keys := snapshot.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, "translation_data", keys[len(keys)-1])
}

func TestBuildPageParamsLanguageResolution(t *testing.T) {
	f := newBuilderFixture()
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	var recorded string
	_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{
		User:         user,
		Realm:        realm,
		PathLanguage: "de",
		SetLanguage:  func(language string) { recorded = language },
	})
	require.NoError(t, err)

	// The path override wins and is recorded on the session.
	assert.Equal(t, "de", recorded)

	data, _ := snapshot.Get("translation_data")
	assert.Equal(t, map[string]string{"hello": "hello in de"}, data)
}

func TestBuildPageParamsTwoFactorLookupShortCircuit(t *testing.T) {
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	t.Run("disabled globally", func(t *testing.T) {
		f := newBuilderFixture()
		f.settings.TwoFactorEnabled = false

		_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{User: user, Realm: realm})
		require.NoError(t, err)

		// The device lookup must be skipped entirely.
		assert.False(t, f.devices.called)

		enabled, _ := snapshot.Get("two_fa_enabled")
		assert.Equal(t, false, enabled)
		enabledUser, _ := snapshot.Get("two_fa_enabled_user")
		assert.Equal(t, false, enabledUser)
	})

	t.Run("enabled with device", func(t *testing.T) {
		f := newBuilderFixture()
		f.settings.TwoFactorEnabled = true
		f.devices.device = &models.Device{Name: "totp", Confirmed: true}

		_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{User: user, Realm: realm})
		require.NoError(t, err)

		assert.True(t, f.devices.called)
		enabledUser, _ := snapshot.Get("two_fa_enabled_user")
		assert.Equal(t, true, enabledUser)
	})

	t.Run("enabled without device", func(t *testing.T) {
		f := newBuilderFixture()
		f.settings.TwoFactorEnabled = true

		_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{User: user, Realm: realm})
		require.NoError(t, err)

		enabled, _ := snapshot.Get("two_fa_enabled")
		assert.Equal(t, true, enabled)
		enabledUser, _ := snapshot.Get("two_fa_enabled_user")
		assert.Equal(t, false, enabledUser)
	})

	t.Run("spectator", func(t *testing.T) {
		f := newBuilderFixture()
		f.settings.TwoFactorEnabled = true

		_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{Realm: realm})
		require.NoError(t, err)

		assert.False(t, f.devices.called)
		enabled, _ := snapshot.Get("two_fa_enabled")
		assert.Equal(t, false, enabled)
	})
}

func TestBuildPageParamsPromoteSponsoring(t *testing.T) {
	tests := []struct {
		name    string
		plan    models.PlanType
		promote bool
		want    bool
	}{
		{"standard-free with promotion", models.PlanStandardFree, true, true},
		{"self-hosted with promotion", models.PlanSelfHosted, true, true},
		{"standard with promotion", models.PlanStandard, true, false},
		{"standard-free without promotion", models.PlanStandardFree, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBuilderFixture()
			f.settings.PromoteSponsoring = tt.promote
			realm := testutils.NewTestRealm(tt.plan)

			_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{Realm: realm})
			require.NoError(t, err)

			promote, _ := snapshot.Get("promote_sponsoring")
			assert.Equal(t, tt.want, promote)
		})
	}
}

func TestBuildPageParamsRegistrationFailurePropagates(t *testing.T) {
	f := newBuilderFixture()
	f.queues.registerErr = errors.New("queue subsystem down")

	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	_, _, err := f.builder().BuildPageParams(context.Background(), &Request{User: user, Realm: realm})
	assert.Error(t, err)
}

func TestBuildPageParamsMissingUserSettingsFailsFast(t *testing.T) {
	f := newBuilderFixture()
	f.queues.state = eventqueue.InitialState{"queue_id": "queue-123"}

	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	_, _, err := f.builder().BuildPageParams(context.Background(), &Request{User: user, Realm: realm})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_settings")
}

func TestBuildPageParamsPassThroughDisplayOptions(t *testing.T) {
	f := newBuilderFixture()
	realm := testutils.NewTestRealm(models.PlanStandard)
	user := testutils.NewTestUser(realm)

	_, snapshot, err := f.builder().BuildPageParams(context.Background(), &Request{
		User:               user,
		Realm:              realm,
		InsecureDesktopApp: true,
		FirstInRealm:       true,
		PromptForInvites:   true,
		NeedsTutorial:      true,
	})
	require.NoError(t, err)

	for _, key := range []string{"insecure_desktop_app", "first_in_realm", "prompt_for_invites", "needs_tutorial"} {
		v, ok := snapshot.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, true, v, key)
	}
}
