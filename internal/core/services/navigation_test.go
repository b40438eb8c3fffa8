package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenwheels/console-api/internal/core/domain"
)

func TestEntriesFor_EveryKnownRoleHasAMenu(t *testing.T) {
	for _, role := range []domain.Role{
		domain.RoleAdmin,
		domain.RoleStationAdmin,
		domain.RoleStaff,
		domain.RoleMaintenance,
		domain.RoleUser,
	} {
		assert.NotEmpty(t, EntriesFor(role), "role %s", role)
	}
}

func TestEntriesFor_UnknownOrEmptyRoleGetsEmptyMenu(t *testing.T) {
	assert.Empty(t, EntriesFor(domain.RoleNone))
	assert.Empty(t, EntriesFor(domain.Role("superuser")))
	// Empty, not nil: callers serialize this directly.
	assert.NotNil(t, EntriesFor(domain.Role("superuser")))
}

func TestEntriesFor_AdminMenuOrder(t *testing.T) {
	entries := EntriesFor(domain.RoleAdmin)

	require.Len(t, entries, 6)
	assert.Equal(t, "/admin/dashboard", entries[0].Path)
	assert.Equal(t, "Users", entries[1].Label)
}

func TestEntriesFor_ReturnsACopy(t *testing.T) {
	first := EntriesFor(domain.RoleStaff)
	first[0].Label = "mutated"

	assert.Equal(t, "Staff Panel", EntriesFor(domain.RoleStaff)[0].Label)
}
