package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
)

// SessionService owns the console's process-wide session. It is the only
// writer of the durable storage slot; the guard and navigation layers read
// through it and never touch storage themselves.
//
// Concurrent handlers share the session, so reads and writes go through an
// RWMutex to keep the "reads observe the last completed write" guarantee.
type SessionService struct {
	mu      sync.RWMutex
	session domain.Session

	storage ports.SessionStorage
	users   ports.UserDirectory
	events  ports.SessionEventPublisher
	logger  *zap.Logger
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(
	storage ports.SessionStorage,
	users ports.UserDirectory,
	events ports.SessionEventPublisher,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		session: domain.EmptySession(),
		storage: storage,
		users:   users,
		events:  events,
		logger:  logger,
	}
}

// Restore loads the persisted session from the durable slot. An absent,
// unparseable, or invariant-breaking blob degrades silently to the empty
// session: corrupted storage means logged out, never a crash.
func (s *SessionService) Restore(ctx context.Context) domain.Session {
	session, err := s.storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNoSession) {
			s.logger.Warn("session restore failed, degrading to logged out", zap.Error(err))
		}
		session = domain.EmptySession()
	}
	if !session.Valid() {
		s.logger.Warn("persisted session breaks the authentication invariant, discarding")
		session = domain.EmptySession()
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return session
}

// Login replaces the session after two weak structural checks: the email is
// non-empty once trimmed and the password is longer than 8 bytes. There is
// no credential verification beyond that. A constraint failure returns
// (false, nil) and leaves the session untouched.
//
// The identity comes from the user directory when the email matches a
// record (case-insensitive); otherwise a fresh identity with RoleUser is
// synthesized. The new session is persisted before Login returns; a
// persistence failure keeps the previous session in place.
func (s *SessionService) Login(ctx context.Context, email, password string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) <= 8 {
		return false, nil
	}

	identity, err := s.resolveIdentity(ctx, email)
	if err != nil {
		return false, err
	}

	next := domain.AuthenticatedSession(identity)
	if err := s.storage.Save(ctx, next); err != nil {
		return false, err
	}

	s.mu.Lock()
	s.session = next
	s.mu.Unlock()

	s.publish(ctx, ports.SessionEvent{
		Type:       ports.SessionLogin,
		UserID:     identity.ID,
		Email:      identity.Email,
		Role:       identity.Role,
		OccurredAt: time.Now().UTC(),
	})
	return true, nil
}

// Logout resets the session to the canonical empty value. The in-memory
// session is cleared even when the persist fails: degrading toward logged
// out is always safe, the reverse is not.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	previous := s.session
	s.session = domain.EmptySession()
	s.mu.Unlock()

	if previous.Identity != nil {
		s.publish(ctx, ports.SessionEvent{
			Type:       ports.SessionLogout,
			UserID:     previous.Identity.ID,
			Email:      previous.Identity.Email,
			Role:       previous.Role,
			OccurredAt: time.Now().UTC(),
		})
	}
	return s.storage.Save(ctx, domain.EmptySession())
}

// Current returns the in-memory session.
func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *SessionService) resolveIdentity(ctx context.Context, email string) (domain.Identity, error) {
	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.IdentityOf(*user), nil
	case errors.Is(err, ports.ErrUserNotFound):
		return synthesizeIdentity(email), nil
	default:
		return domain.Identity{}, err
	}
}

// synthesizeIdentity builds the fallback identity for an email with no
// directory record: a generated id, the email's local part as display name,
// and the lowest-privilege role.
func synthesizeIdentity(email string) domain.Identity {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return domain.Identity{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      domain.RoleUser,
		Verified:  false,
		CreatedAt: time.Now().UTC(),
	}
}

// publish delivers a lifecycle event best effort. A broker outage must not
// turn a valid login or logout into a failure.
func (s *SessionService) publish(ctx context.Context, evt ports.SessionEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishSessionEvent(ctx, evt); err != nil {
		s.logger.Warn("session event publish failed",
			zap.String("type", evt.Type), zap.Error(err))
	}
}
