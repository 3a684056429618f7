package eventqueue

import (
	"github.com/nfrund/remora/internal/i18n"
	"github.com/nfrund/remora/internal/models"
)

type stateOptions struct {
	clientGravatar     bool
	slimPresence       bool
	userSettingsObject bool
}

// buildInitialState assembles the server-state payload shared by the
// registration and one-shot fetch paths. The user is nil on the anonymous
// path, which gets spectator defaults for user_settings.
func buildInitialState(user *models.User, realm *models.Realm, opts stateOptions) InitialState {
	userSettings := map[string]any{
		"default_language":             i18n.DefaultLanguage,
		"color_scheme":                 int(models.ColorSchemeAutomatic),
		"enable_desktop_notifications": true,
	}
	if user != nil {
		if user.DefaultLanguage != "" {
			userSettings["default_language"] = user.DefaultLanguage
		}
		userSettings["color_scheme"] = int(user.ColorScheme)
	}

	state := InitialState{
		"realm_name":              realm.Name,
		"realm_uri":               "/" + realm.Subdomain,
		"realm_plan_type":         int(realm.PlanType),
		"realm_webathena_enabled": realm.WebathenaEnabled,
		"client_gravatar":         opts.clientGravatar,
		"presences":               map[string]any{},
		"slim_presence":           opts.slimPresence,
		"user_settings":           userSettings,
		"user_settings_object":    opts.userSettingsObject,
	}
	return state
}
