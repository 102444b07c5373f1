// Package policy decides whether an authenticated user may perform an action.
// Callers resolve the acting user first; a nil actor means no valid token was
// presented and always yields ErrUnauthenticated rather than ErrForbidden.
package policy

import (
	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

// CanModifyUser reports whether actor may change the account identified by targetID.
func CanModifyUser(actor *model.User, targetID int64) bool {
	if actor == nil {
		return false
	}
	return actor.ID == targetID || actor.HasRole(model.RoleAdmin)
}

// RequireRole reports whether actor holds kind in any scope.
func RequireRole(actor *model.User, kind model.RoleKind) bool {
	return actor.HasRole(kind)
}

// RequireScopedRole reports whether actor holds kind scoped to objectID.
// Admins pass every scoped check.
func RequireScopedRole(actor *model.User, kind model.RoleKind, objectID int64) bool {
	if actor.HasRole(model.RoleAdmin) {
		return true
	}
	return actor.HasScopedRole(kind, objectID)
}

// Authorize turns a guard decision into an error outcome.
func Authorize(actor *model.User, allowed bool) error {
	if actor == nil {
		return domainErrors.ErrUnauthenticated
	}
	if !allowed {
		return domainErrors.ErrForbidden
	}
	return nil
}
