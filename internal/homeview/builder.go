// Package homeview assembles the initial application-state snapshot sent to
// a client when it loads the main view. One build produces a single
// consistent point-in-time view of user, realm, billing, permission,
// localization and message-stream state, merged with either a live
// event-queue registration (authenticated sessions) or a one-shot state
// fetch (spectators).
package homeview

import (
	"context"
	"fmt"
	"sort"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/eventqueue"
	"github.com/nfrund/remora/internal/i18n"
	"github.com/nfrund/remora/internal/models"
)

// Localizer is the localization subsystem as the snapshot pipeline sees it.
type Localizer interface {
	ResolveLanguage(pathLanguage, userDefault string) string
	TranslationData(code string) map[string]string
	ListLanguages() []i18n.Language
}

// DeviceFinder answers whether an identity has a usable second-factor
// device.
type DeviceFinder interface {
	DefaultDevice(ctx context.Context, user *models.User) (*models.Device, error)
}

// Request carries everything one snapshot build needs. No field is read
// after the build returns, and a nil User means the session is a spectator.
type Request struct {
	User  *models.User
	Realm *models.Realm

	// Client is the caller's client name as resolved by the request layer.
	Client string

	InsecureDesktopApp bool
	Narrow             []models.NarrowTerm
	NarrowStream       *models.Stream
	NarrowTopic        string
	FirstInRealm       bool
	PromptForInvites   bool
	NeedsTutorial      bool

	// PathLanguage is a language code embedded in the request path, if any.
	// A valid one overrides the user's registered default.
	PathLanguage string

	// SetLanguage, when non-nil, records the resolved display language on
	// the session's locale state.
	SetLanguage func(language string)
}

// Builder is the snapshot assembler. It owns no mutable state between
// builds; every build is a pure composition of its collaborators' outputs.
type Builder struct {
	queues    eventqueue.Client
	locales   Localizer
	billing   *BillingPolicy
	readState *ReadStateResolver
	streams   domain.StreamStore
	devices   DeviceFinder
	settings  Settings
}

// NewBuilder creates a new Builder instance.
func NewBuilder(
	queues eventqueue.Client,
	locales Localizer,
	billing *BillingPolicy,
	readState *ReadStateResolver,
	streams domain.StreamStore,
	devices DeviceFinder,
	settings Settings,
) *Builder {
	return &Builder{
		queues:    queues,
		locales:   locales,
		billing:   billing,
		readState: readState,
		streams:   streams,
		devices:   devices,
		settings:  settings,
	}
}

// BuildPageParams composes the full snapshot for one home-view load. The
// returned queue id is empty for spectators, who get a one-shot state fetch
// instead of a live queue.
//
// Event-queue and store failures propagate unchanged; a registration result
// missing its user_settings sub-mapping is a programming error and fails the
// build rather than degrading the snapshot.
func (b *Builder) BuildPageParams(ctx context.Context, req *Request) (string, *Snapshot, error) {
	capabilities := eventqueue.ClientCapabilities{
		NotificationSettingsNull:   true,
		BulkMessageDeletion:        true,
		UserAvatarURLFieldOptional: true,
		// Flip once the client implements stream typing notifications.
		StreamTypingNotifications: false,
		UserSettingsObject:        true,
	}

	var queueID string
	var state eventqueue.InitialState

	if req.User != nil {
		registration, err := b.queues.Register(ctx, req.User, req.Realm, eventqueue.RegisterOptions{
			Client:         req.Client,
			ApplyMarkdown:  true,
			ClientGravatar: true,
			SlimPresence:   true,
			Capabilities:   capabilities,
			Narrow:         req.Narrow,
			IncludeStreams: false,
		})
		if err != nil {
			return "", nil, fmt.Errorf("event queue registration failed: %w", err)
		}
		queueID = registration.QueueID
		state = registration.State
	} else {
		// Spectators get a point-in-time fetch and no live queue.
		var err error
		state, err = b.queues.FetchInitialState(ctx, req.Realm, eventqueue.FetchOptions{
			ClientGravatar:             false,
			UserAvatarURLFieldOptional: capabilities.UserAvatarURLFieldOptional,
			UserSettingsObject:         capabilities.UserSettingsObject,
			SlimPresence:               false,
			IncludeSubscribers:         false,
			IncludeStreams:             false,
		})
		if err != nil {
			return "", nil, fmt.Errorf("initial state fetch failed: %w", err)
		}
		b.queues.PostProcess(req.User, state, false)
	}

	userSettings, ok := state["user_settings"].(map[string]any)
	if !ok {
		return "", nil, fmt.Errorf("registration result is missing the user_settings sub-mapping")
	}
	defaultLanguage, _ := userSettings["default_language"].(string)

	language := b.locales.ResolveLanguage(req.PathLanguage, defaultLanguage)
	if req.SetLanguage != nil {
		req.SetLanguage(language)
	}

	furthestReadTime, err := b.readState.FurthestReadTime(ctx, req.User)
	if err != nil {
		return "", nil, err
	}

	billingInfo, err := b.billing.Evaluate(ctx, req.User, req.Realm, b.settings.CorporateEnabled)
	if err != nil {
		return "", nil, err
	}

	permissionInfo := UserPermissionInfoFor(req.User, req.Realm)

	twoFAEnabled := b.settings.TwoFactorEnabled && req.User != nil
	twoFAEnabledUser := false
	// The device lookup only runs when the cheap flag is already true.
	if twoFAEnabled {
		device, err := b.devices.DefaultDevice(ctx, req.User)
		if err != nil {
			return "", nil, fmt.Errorf("failed to look up second-factor device: %w", err)
		}
		twoFAEnabledUser = device != nil
	}

	isSpectator := req.User == nil

	snapshot := NewSnapshot()

	// Server settings.
	snapshot.Set("test_suite", b.settings.TestSuite)
	snapshot.Set("insecure_desktop_app", req.InsecureDesktopApp)
	snapshot.Set("login_page", b.settings.LoginPageURL)
	snapshot.Set("warn_no_email", b.settings.WarnNoEmail)
	snapshot.Set("search_pills_enabled", b.settings.SearchPillsEnabled)
	snapshot.Set("corporate_enabled", b.settings.CorporateEnabled)

	// Misc. computed fields.
	snapshot.Set("language_list", b.locales.ListLanguages())
	snapshot.Set("needs_tutorial", req.NeedsTutorial)
	snapshot.Set("first_in_realm", req.FirstInRealm)
	snapshot.Set("prompt_for_invites", req.PromptForInvites)
	snapshot.Set("furthest_read_time", furthestReadTime)
	snapshot.Set("bot_types", BotTypes(req.User))
	snapshot.Set("two_fa_enabled", twoFAEnabled)
	snapshot.Set("apps_page_url", b.settings.AppsPageURL)
	snapshot.Set("show_billing", billingInfo.ShowBilling)
	snapshot.Set("promote_sponsoring", b.settings.PromoteSponsoringInRealm(req.Realm))
	snapshot.Set("show_plans", billingInfo.ShowPlans)
	snapshot.Set("show_webathena", permissionInfo.ShowWebathena)
	snapshot.Set("two_fa_enabled_user", twoFAEnabledUser)
	snapshot.Set("is_spectator", isSpectator)
	// There is no event queue for spectators; events support for them is
	// not implemented.
	snapshot.Set("no_event_queue", isSpectator)

	// Flatten the registration/fetch result into the top level. Keys are
	// merged in sorted order so the snapshot is deterministic.
	stateKeys := make([]string, 0, len(state))
	for key := range state {
		stateKeys = append(stateKeys, key)
	}
	sort.Strings(stateKeys)
	for _, key := range stateKeys {
		snapshot.Set(key, state[key])
	}

	// The narrow override runs strictly after the merge so its writes are
	// authoritative.
	if err := applyNarrowOverride(ctx, b.streams, snapshot, req.NarrowStream, req.NarrowTopic, req.Narrow); err != nil {
		return "", nil, err
	}

	snapshot.Set("translation_data", b.locales.TranslationData(language))

	return queueID, snapshot, nil
}
