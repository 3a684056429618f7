package homeview

import (
	"github.com/nfrund/remora/internal/models"
)

// UserPermissionInfo is the minimal permission/UI-capability view projected
// from the current identity.
type UserPermissionInfo struct {
	ColorScheme   models.ColorScheme
	IsGuest       bool
	IsRealmAdmin  bool
	IsRealmOwner  bool
	ShowWebathena bool
}

// UserPermissionInfoFor projects permission info from an optional identity.
// Anonymous sessions get fixed defaults: automatic color scheme, everything
// else false.
func UserPermissionInfoFor(user *models.User, realm *models.Realm) UserPermissionInfo {
	if user == nil {
		return UserPermissionInfo{
			ColorScheme: models.ColorSchemeAutomatic,
		}
	}
	return UserPermissionInfo{
		ColorScheme:   user.ColorScheme,
		IsGuest:       user.IsGuest,
		IsRealmAdmin:  user.IsRealmAdmin,
		IsRealmOwner:  user.IsRealmOwner,
		ShowWebathena: realm.WebathenaEnabled,
	}
}
