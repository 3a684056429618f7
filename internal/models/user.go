package models

import (
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// ColorScheme is the user's preferred UI color scheme.
type ColorScheme int

const (
	ColorSchemeAutomatic ColorScheme = iota + 1
	ColorSchemeNight
	ColorSchemeDay
)

// BotType identifies one of the bot flavors a user may be allowed to create.
type BotType int

const (
	BotTypeDefault BotType = iota + 1
	BotTypeIncomingWebhook
	BotTypeOutgoingWebhook
	BotTypeEmbedded
)

// BotTypeNames maps every known bot type to its display name. Iteration for
// client payloads goes through BotTypeOrder so the output is stable.
var BotTypeNames = map[BotType]string{
	BotTypeDefault:         "Generic bot",
	BotTypeIncomingWebhook: "Incoming webhook",
	BotTypeOutgoingWebhook: "Outgoing webhook",
	BotTypeEmbedded:        "Embedded bot",
}

// BotTypeOrder is the canonical ordering of bot types in client payloads.
var BotTypeOrder = []BotType{
	BotTypeDefault,
	BotTypeIncomingWebhook,
	BotTypeOutgoingWebhook,
	BotTypeEmbedded,
}

// Tutorial progress states.
const (
	TutorialWaiting  = "waiting"
	TutorialStarted  = "started"
	TutorialFinished = "finished"
)

// User represents an authenticated user record. A nil *User throughout the
// codebase means the session is anonymous (a spectator).
type User struct {
	ID               *models.RecordID `json:"id,omitempty"`
	Email            string           `json:"email"`
	Name             string           `json:"name,omitempty"`
	RealmID          *models.RecordID `json:"realm,omitempty"`
	ColorScheme      ColorScheme      `json:"colorScheme"`
	IsGuest          bool             `json:"isGuest"`
	IsRealmAdmin     bool             `json:"isRealmAdmin"`
	IsRealmOwner     bool             `json:"isRealmOwner"`
	HasBillingAccess bool             `json:"hasBillingAccess"`
	AllowedBotTypes  []BotType        `json:"allowedBotTypes,omitempty"`
	DefaultLanguage  string           `json:"defaultLanguage,omitempty"`
	TutorialStatus   string           `json:"tutorialStatus,omitempty"`
}

// CanCreateBot reports whether the user may create bots of the given type.
func (u *User) CanCreateBot(t BotType) bool {
	for _, allowed := range u.AllowedBotTypes {
		if allowed == t {
			return true
		}
	}
	return false
}
