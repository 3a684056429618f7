package homeview

import (
	"github.com/nfrund/remora/internal/models"
)

// BotTypeInfo is one entry of the bot-type enumeration sent to the client.
type BotTypeInfo struct {
	TypeID  int    `json:"type_id"`
	Name    string `json:"name"`
	Allowed bool   `json:"allowed"`
}

// BotTypes enumerates every known bot type, tagged with whether the identity
// may create it. Anonymous sessions get an empty list.
func BotTypes(user *models.User) []BotTypeInfo {
	botTypes := []BotTypeInfo{}
	if user == nil {
		return botTypes
	}

	for _, t := range models.BotTypeOrder {
		botTypes = append(botTypes, BotTypeInfo{
			TypeID:  int(t),
			Name:    models.BotTypeNames[t],
			Allowed: user.CanCreateBot(t),
		})
	}
	return botTypes
}
