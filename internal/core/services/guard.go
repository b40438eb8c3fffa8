package services

import (
	"net/url"

	"github.com/greenwheels/console-api/internal/core/domain"
)

// Outcome is the guard's verdict for one navigation attempt.
type Outcome string

const (
	OutcomeRender           Outcome = "render"
	OutcomeRedirectLogin    Outcome = "redirect-login"
	OutcomeRedirectFallback Outcome = "redirect-fallback"
)

// Decision tells the caller what the user ultimately sees. Location is the
// redirect target and is empty when the outcome is OutcomeRender.
type Decision struct {
	Outcome  Outcome
	Location string
}

// LoginPath is where unauthenticated navigation is sent. The originally
// requested path rides along in the "next" query parameter so the login
// view can return the user there; it is transient navigation state, never
// part of the session.
const LoginPath = "/login"

// roleHome maps a role to its fallback path when a navigation attempt is
// authenticated but not authorized. Only admin and staff have dedicated
// homes; every other role falls back to the root view.
var roleHome = map[domain.Role]string{
	domain.RoleAdmin: "/admin/dashboard",
	domain.RoleStaff: "/staff/panel",
}

// FallbackPath returns the role-appropriate home path.
func FallbackPath(role domain.Role) string {
	if home, ok := roleHome[role]; ok {
		return home
	}
	return "/"
}

// Decide evaluates a single navigation attempt. It is a pure function of
// (session, allow-set, path): total over its inputs, first match wins.
//
//  1. Not authenticated: redirect to login, carrying the requested path.
//  2. No roles required: render.
//  3. Role in the allow-set: render.
//  4. Wrong role: redirect to the role's fallback path — unless the
//     requested path already is that fallback, in which case render. Without
//     that last rule a fallback page protected against its own role would
//     redirect to itself forever.
func Decide(session domain.Session, requiredRoles []domain.Role, path string) Decision {
	if !session.Authenticated {
		return Decision{
			Outcome:  OutcomeRedirectLogin,
			Location: LoginPath + "?next=" + url.QueryEscape(path),
		}
	}
	if len(requiredRoles) == 0 {
		return Decision{Outcome: OutcomeRender}
	}
	if IsAuthorized(session, requiredRoles) {
		return Decision{Outcome: OutcomeRender}
	}
	fallback := FallbackPath(session.Role)
	if path == fallback {
		return Decision{Outcome: OutcomeRender}
	}
	return Decision{Outcome: OutcomeRedirectFallback, Location: fallback}
}
