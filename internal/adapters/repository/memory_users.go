// Package repository holds the console's mock data collaborators. The
// collections are seeded once at construction and read-only afterwards;
// nothing here persists.
package repository

import (
	"context"
	"strings"
	"time"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
)

// MemoryUserDirectory is the in-memory user collection consulted at login.
type MemoryUserDirectory struct {
	users []domain.User
}

var _ ports.UserDirectory = (*MemoryUserDirectory)(nil)

// NewMemoryUserDirectory seeds the directory. A nil seed installs the
// default GreenWheels staff roster.
func NewMemoryUserDirectory(seed []domain.User) *MemoryUserDirectory {
	if seed == nil {
		seed = defaultUsers()
	}
	return &MemoryUserDirectory{users: seed}
}

// FindByEmail matches case-insensitively on the email address.
func (d *MemoryUserDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range d.users {
		if strings.EqualFold(d.users[i].Email, email) {
			user := d.users[i]
			return &user, nil
		}
	}
	return nil, ports.ErrUserNotFound
}

func (d *MemoryUserDirectory) List(_ context.Context) []domain.User {
	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out
}

func defaultUsers() []domain.User {
	createdAt := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	return []domain.User{
		{ID: "usr-001", Name: "Marta Velden", Email: "marta.velden@greenwheels.example", Role: domain.RoleAdmin, Verified: true, CreatedAt: createdAt},
		{ID: "usr-002", Name: "Jonas Brekke", Email: "jonas.brekke@greenwheels.example", Role: domain.RoleStationAdmin, Verified: true, CreatedAt: createdAt.AddDate(0, 0, 4)},
		{ID: "usr-003", Name: "Priya Nair", Email: "priya.nair@greenwheels.example", Role: domain.RoleStaff, Verified: true, CreatedAt: createdAt.AddDate(0, 0, 9)},
		{ID: "usr-004", Name: "Tomás Ferreira", Email: "tomas.ferreira@greenwheels.example", Role: domain.RoleMaintenance, Verified: true, CreatedAt: createdAt.AddDate(0, 1, 0)},
		{ID: "usr-005", Name: "Leah Okafor", Email: "leah.okafor@greenwheels.example", Role: domain.RoleStaff, Verified: false, CreatedAt: createdAt.AddDate(0, 1, 12)},
		{ID: "usr-006", Name: "Sven Halvorsen", Email: "sven.halvorsen@greenwheels.example", Role: domain.RoleStationAdmin, Verified: true, CreatedAt: createdAt.AddDate(0, 2, 1)},
		{ID: "usr-007", Name: "Aiko Tanaka", Email: "aiko.tanaka@rider.example", Role: domain.RoleUser, Verified: true, CreatedAt: createdAt.AddDate(0, 2, 20)},
		{ID: "usr-008", Name: "Daan Visser", Email: "daan.visser@rider.example", Role: domain.RoleUser, Verified: false, CreatedAt: createdAt.AddDate(0, 3, 2)},
	}
}
