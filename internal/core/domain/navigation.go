package domain

// NavigationEntry is one item in the role-specific console menu.
type NavigationEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}
