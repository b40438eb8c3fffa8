package services

import "github.com/greenwheels/console-api/internal/core/domain"

// IsAuthorized decides whether the session may exercise a capability gated
// by the given allow-set. It is pure: no I/O, no side effects.
//
// Authentication is a precondition for any authorization decision, so an
// unauthenticated session is denied even when the allow-set is empty. An
// empty or nil allow-set means "any authenticated identity". Otherwise the
// session's role must be an exact member of the set; there is no role
// hierarchy and no implication between roles.
func IsAuthorized(session domain.Session, requiredRoles []domain.Role) bool {
	if !session.Authenticated {
		return false
	}
	if len(requiredRoles) == 0 {
		return true
	}
	return session.Role.In(requiredRoles)
}
