package services

import "github.com/greenwheels/console-api/internal/core/domain"

// menus is hand-authored per role, not derived from the guard's route
// table. Some entries deliberately point at shared views that the guard
// gates independently; the menu hides links the guard would also block.
var menus = map[domain.Role][]domain.NavigationEntry{
	domain.RoleAdmin: {
		{Label: "Dashboard", Path: "/admin/dashboard", Icon: "layout-dashboard"},
		{Label: "Users", Path: "/admin/users", Icon: "users"},
		{Label: "Bikes", Path: "/bikes", Icon: "bike"},
		{Label: "Stations", Path: "/stations", Icon: "map-pin"},
		{Label: "Maintenance", Path: "/maintenance/reports", Icon: "wrench"},
		{Label: "Reservations", Path: "/reservations", Icon: "calendar"},
	},
	domain.RoleStationAdmin: {
		{Label: "My Station", Path: "/station/dashboard", Icon: "map-pin"},
		{Label: "Stations", Path: "/stations", Icon: "map"},
		{Label: "Bikes", Path: "/bikes", Icon: "bike"},
	},
	domain.RoleStaff: {
		{Label: "Staff Panel", Path: "/staff/panel", Icon: "clipboard"},
		{Label: "Bikes", Path: "/bikes", Icon: "bike"},
		{Label: "Reservations", Path: "/reservations", Icon: "calendar"},
	},
	domain.RoleMaintenance: {
		{Label: "Workshop", Path: "/maintenance/dashboard", Icon: "wrench"},
		{Label: "Reports", Path: "/maintenance/reports", Icon: "file-warning"},
	},
	domain.RoleUser: {
		{Label: "Home", Path: "/", Icon: "home"},
	},
}

// EntriesFor returns the ordered menu for a role. Unknown or empty roles
// get an empty menu rather than an error.
func EntriesFor(role domain.Role) []domain.NavigationEntry {
	entries, ok := menus[role]
	if !ok {
		return []domain.NavigationEntry{}
	}
	out := make([]domain.NavigationEntry, len(entries))
	copy(out, entries)
	return out
}
