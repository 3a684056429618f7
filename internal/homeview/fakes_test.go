package homeview

import (
	"context"
	"errors"

	"github.com/nfrund/remora/internal/eventqueue"
	"github.com/nfrund/remora/internal/i18n"
	"github.com/nfrund/remora/internal/models"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// fakeBillingStore serves canned billing records.
type fakeBillingStore struct {
	customer *models.Customer
	hasPlan  bool
	err      error
}

func (f *fakeBillingStore) CustomerForRealm(ctx context.Context, realmID *surrealmodels.RecordID) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customer, nil
}

func (f *fakeBillingStore) HasAnyPlan(ctx context.Context, customer *models.Customer) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.hasPlan, nil
}

// fakeActivityStore serves a canned activity row.
type fakeActivityStore struct {
	activity *models.UserActivity
	err      error
}

func (f *fakeActivityStore) LatestUpdateMessageFlags(ctx context.Context, user *models.User) (*models.UserActivity, error) {
	return f.activity, f.err
}

// fakeStreamStore serves canned streams and message ids, and counts
// MaxMessageID calls so tests can assert lookup behavior.
type fakeStreamStore struct {
	stream       *models.Stream
	maxMessageID int64
	hasMessages  bool
	maxCalls     int
}

func (f *fakeStreamStore) FindByName(ctx context.Context, realm *models.Realm, name string) (*models.Stream, error) {
	if f.stream == nil || f.stream.Name != name {
		return nil, errors.New("stream not found")
	}
	return f.stream, nil
}

func (f *fakeStreamStore) MaxMessageID(ctx context.Context, recipient *models.Stream) (int64, bool, error) {
	f.maxCalls++
	return f.maxMessageID, f.hasMessages, nil
}

// fakeDeviceFinder reports a canned second-factor device and records whether
// it was consulted.
type fakeDeviceFinder struct {
	device *models.Device
	called bool
}

func (f *fakeDeviceFinder) DefaultDevice(ctx context.Context, user *models.User) (*models.Device, error) {
	f.called = true
	return f.device, nil
}

// fakeLocalizer resolves languages without catalogs.
type fakeLocalizer struct {
	supported map[string]bool
	resolved  string
}

func newFakeLocalizer(codes ...string) *fakeLocalizer {
	supported := map[string]bool{"en": true}
	for _, code := range codes {
		supported[code] = true
	}
	return &fakeLocalizer{supported: supported}
}

func (f *fakeLocalizer) ResolveLanguage(pathLanguage, userDefault string) string {
	switch {
	case pathLanguage != "" && f.supported[pathLanguage]:
		f.resolved = pathLanguage
	case f.supported[userDefault]:
		f.resolved = userDefault
	default:
		f.resolved = "en"
	}
	return f.resolved
}

func (f *fakeLocalizer) TranslationData(code string) map[string]string {
	if code == "en" {
		return map[string]string{}
	}
	return map[string]string{"hello": "hello in " + code}
}

func (f *fakeLocalizer) ListLanguages() []i18n.Language {
	list := []i18n.Language{}
	for code := range f.supported {
		list = append(list, i18n.Language{Code: code, Name: code})
	}
	return list
}

// fakeQueueClient implements eventqueue.Client with a canned initial state.
type fakeQueueClient struct {
	queueID       string
	state         eventqueue.InitialState
	registerErr   error
	registered    bool
	fetched       bool
	postProcessed bool
}

func newFakeQueueClient(queueID string) *fakeQueueClient {
	return &fakeQueueClient{queueID: queueID}
}

func (f *fakeQueueClient) baseState(queueID any) eventqueue.InitialState {
	if f.state != nil {
		return f.state
	}
	return eventqueue.InitialState{
		"queue_id":   queueID,
		"realm_name": "Test Realm",
		"presences":  map[string]any{},
		"user_settings": map[string]any{
			"default_language":             "en",
			"enable_desktop_notifications": true,
		},
	}
}

func (f *fakeQueueClient) Register(ctx context.Context, user *models.User, realm *models.Realm, opts eventqueue.RegisterOptions) (*eventqueue.Registration, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = true
	return &eventqueue.Registration{QueueID: f.queueID, State: f.baseState(f.queueID)}, nil
}

func (f *fakeQueueClient) FetchInitialState(ctx context.Context, realm *models.Realm, opts eventqueue.FetchOptions) (eventqueue.InitialState, error) {
	f.fetched = true
	return f.baseState(nil), nil
}

func (f *fakeQueueClient) PostProcess(user *models.User, state eventqueue.InitialState, queueBacked bool) {
	f.postProcessed = true
	state["queue_backed"] = queueBacked
}
