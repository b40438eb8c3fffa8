package ports

import (
	"context"
	"time"

	"github.com/greenwheels/console-api/internal/core/domain"
)

const (
	SessionLogin  = "session.login"
	SessionLogout = "session.logout"
)

// SessionEvent records a session lifecycle transition for downstream
// consumers (audit trail, usage dashboards).
type SessionEvent struct {
	Type       string      `json:"type"`
	UserID     string      `json:"user_id,omitempty"`
	Email      string      `json:"email,omitempty"`
	Role       domain.Role `json:"role,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// SessionEventPublisher delivers session lifecycle events. Publishing is
// best effort: a delivery failure never fails the login or logout that
// produced the event.
type SessionEventPublisher interface {
	PublishSessionEvent(ctx context.Context, evt SessionEvent) error
}
