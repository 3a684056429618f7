package homeview

import (
	"github.com/nfrund/remora/internal/config"
	"github.com/nfrund/remora/internal/models"
)

// Settings are the process-wide server flags the snapshot passes through to
// the client. They are an explicit parameter of the builder rather than
// ambient globals so builds stay pure and testable.
type Settings struct {
	TestSuite          bool
	LoginPageURL       string
	WarnNoEmail        bool
	SearchPillsEnabled bool
	CorporateEnabled   bool
	PromoteSponsoring  bool
	TwoFactorEnabled   bool
	AppsPageURL        string
}

// SettingsFromConfig copies the snapshot-relevant flags out of the
// application configuration.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		TestSuite:          cfg.TestSuite,
		LoginPageURL:       cfg.LoginPageURL,
		WarnNoEmail:        cfg.WarnNoEmail,
		SearchPillsEnabled: cfg.SearchPillsEnabled,
		CorporateEnabled:   cfg.CorporateEnabled,
		PromoteSponsoring:  cfg.PromoteSponsoring,
		TwoFactorEnabled:   cfg.TwoFactorEnabled,
		AppsPageURL:        cfg.AppsPageURL,
	}
}

// PromoteSponsoringInRealm reports whether sponsoring should be advertised to this
// realm: only when the global promotion flag is on and the realm is
// non-paying.
func (s Settings) PromoteSponsoringInRealm(realm *models.Realm) bool {
	if !s.PromoteSponsoring {
		return false
	}
	return realm.PlanType == models.PlanStandardFree || realm.PlanType == models.PlanSelfHosted
}
