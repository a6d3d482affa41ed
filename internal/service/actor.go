package service

import "github.com/suraksha-health/training-portal-api/internal/models"

// Actor identifies the authenticated caller of a service operation. Handlers
// build it from verified token claims, never from request parameters.
type Actor struct {
	UserID int64
	Role   models.UserRole
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// scopeOwner returns the owner filter for role-scoped fetches: nil for
// admins (full visibility), the actor's own ID otherwise.
func (a Actor) scopeOwner() *int64 {
	if a.IsAdmin() {
		return nil
	}
	id := a.UserID
	return &id
}
