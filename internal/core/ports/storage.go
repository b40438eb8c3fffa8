package ports

import (
	"context"
	"errors"

	"github.com/greenwheels/console-api/internal/core/domain"
)

// ErrNoSession is reported by a SessionStorage when the durable slot is
// absent or its content cannot be parsed. Callers treat both the same way:
// there is no session to restore.
var ErrNoSession = errors.New("no persisted session")

// SessionStorage is the single durable slot holding the serialized session.
// The slot is a last-writer-wins register; concurrent writers sharing one
// slot are not reconciled.
type SessionStorage interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}
