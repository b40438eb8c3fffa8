package domain

// Role identifies a user's access class. The set is closed: values outside
// it never match any capability requirement and produce an empty menu.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleStationAdmin Role = "station-admin"
	RoleStaff        Role = "staff"
	RoleMaintenance  Role = "maintenance"
	RoleUser         Role = "user"
)

// RoleNone marks the absence of a role on an unauthenticated session.
const RoleNone Role = ""

// Known reports whether r is one of the enumerated roles.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleStationAdmin, RoleStaff, RoleMaintenance, RoleUser:
		return true
	}
	return false
}

// In reports whether r is a member of the given allow-set. Membership is
// exact equality; roles carry no hierarchy and imply nothing about each
// other.
func (r Role) In(roles []Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}
