// Package policy decides which list-view actions are exposed for a role.
// It is a convenience gate for the UI only; the backend re-checks every
// destructive call.
package policy

import "github.com/cnedd11/Crypto-Bank-App/internal/data/entity"

// Actions is the set of controls a view may render for the current role.
type Actions struct {
	View   bool
	Create bool
	Edit   bool
	Delete bool
}

// ActionsFor is a pure function of the probed role. View, create and
// edit are available to both roles; delete is admin only.
func ActionsFor(role entity.Role) Actions {
	return Actions{
		View:   true,
		Create: true,
		Edit:   true,
		Delete: role == entity.RoleAdmin,
	}
}
