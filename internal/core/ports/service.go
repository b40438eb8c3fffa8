package ports

import (
	"context"

	"github.com/greenwheels/console-api/internal/core/domain"
)

// SessionService is the single source of truth for the console's current
// session. Every successful mutation persists synchronously before the call
// returns; readers afterwards observe the new value.
type SessionService interface {
	Restore(ctx context.Context) domain.Session
	Login(ctx context.Context, email, password string) (bool, error)
	Logout(ctx context.Context) error
	Current() domain.Session
}
