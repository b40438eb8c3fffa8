package domain

// Session is the console's current authentication state.
//
// Invariant: Authenticated == (Identity != nil) == (Role != RoleNone).
// Sessions are replaced wholly on login and reset on logout; individual
// fields are never mutated in place.
type Session struct {
	Identity      *Identity `json:"identity"`
	Authenticated bool      `json:"is_authenticated"`
	Role          Role      `json:"role"`
}

// EmptySession is the canonical logged-out state. Corrupted or absent
// durable storage always degrades to this value.
func EmptySession() Session {
	return Session{Identity: nil, Authenticated: false, Role: RoleNone}
}

// AuthenticatedSession builds the session for a freshly resolved identity.
func AuthenticatedSession(identity Identity) Session {
	return Session{
		Identity:      &identity,
		Authenticated: true,
		Role:          identity.Role,
	}
}

// Valid reports whether the session upholds the authentication invariant.
// Blobs restored from durable storage that fail this check are treated as
// corrupt.
func (s Session) Valid() bool {
	if s.Authenticated {
		return s.Identity != nil && s.Role != RoleNone
	}
	return s.Identity == nil && s.Role == RoleNone
}
