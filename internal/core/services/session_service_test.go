package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
)

// mockStorage implements ports.SessionStorage with call tracking and error
// injection.
type mockStorage struct {
	stored  domain.Session
	hasBlob bool

	SaveCalls []domain.Session
	LoadErr   error
	SaveErr   error
}

var _ ports.SessionStorage = (*mockStorage)(nil)

func (m *mockStorage) Load(context.Context) (domain.Session, error) {
	if m.LoadErr != nil {
		return domain.EmptySession(), m.LoadErr
	}
	if !m.hasBlob {
		return domain.EmptySession(), ports.ErrNoSession
	}
	return m.stored, nil
}

func (m *mockStorage) Save(_ context.Context, session domain.Session) error {
	m.SaveCalls = append(m.SaveCalls, session)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.stored = session
	m.hasBlob = true
	return nil
}

// mockDirectory implements ports.UserDirectory over a fixed slice.
type mockDirectory struct {
	users            []domain.User
	FindByEmailCalls []string
}

var _ ports.UserDirectory = (*mockDirectory)(nil)

func (m *mockDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.FindByEmailCalls = append(m.FindByEmailCalls, email)
	for i := range m.users {
		if strings.EqualFold(m.users[i].Email, email) {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ports.ErrUserNotFound
}

func (m *mockDirectory) List(context.Context) []domain.User { return m.users }

// mockPublisher implements ports.SessionEventPublisher with call tracking
// and error injection.
type mockPublisher struct {
	Events     []ports.SessionEvent
	PublishErr error
}

var _ ports.SessionEventPublisher = (*mockPublisher)(nil)

func (m *mockPublisher) PublishSessionEvent(_ context.Context, evt ports.SessionEvent) error {
	m.Events = append(m.Events, evt)
	return m.PublishErr
}

func knownAdmin() domain.User {
	return domain.User{
		ID:        "usr-001",
		Name:      "Marta Velden",
		Email:     "marta.velden@greenwheels.example",
		Role:      domain.RoleAdmin,
		Verified:  true,
		CreatedAt: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC),
	}
}

func newTestService(storage *mockStorage, directory *mockDirectory, publisher *mockPublisher) *SessionService {
	return NewSessionService(storage, directory, publisher, zap.NewNop())
}

func TestLogin_EmptyEmailRejected(t *testing.T) {
	store := &mockStorage{}
	svc := newTestService(store, &mockDirectory{}, &mockPublisher{})

	ok, err := svc.Login(context.Background(), "   ", "longenoughpassword")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.SaveCalls, "a failed login must not persist")
	assert.Equal(t, domain.EmptySession(), svc.Current())
}

func TestLogin_ShortPasswordRejected(t *testing.T) {
	store := &mockStorage{}
	svc := newTestService(store, &mockDirectory{}, &mockPublisher{})

	// Exactly 8 characters is still too short: the constraint is strictly
	// longer than 8.
	ok, err := svc.Login(context.Background(), "a@b.com", "12345678")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.SaveCalls)
	assert.Equal(t, domain.EmptySession(), svc.Current())
}

func TestLogin_MatchedIdentityKeepsRecordedRole(t *testing.T) {
	store := &mockStorage{}
	directory := &mockDirectory{users: []domain.User{knownAdmin()}}
	svc := newTestService(store, directory, &mockPublisher{})

	ok, err := svc.Login(context.Background(), "marta.velden@greenwheels.example", "longenoughpassword")

	require.NoError(t, err)
	require.True(t, ok)

	session := svc.Current()
	assert.True(t, session.Authenticated)
	assert.Equal(t, domain.RoleAdmin, session.Role, "role must come from the record, not default to user")
	require.NotNil(t, session.Identity)
	assert.Equal(t, "usr-001", session.Identity.ID)
	assert.True(t, session.Valid())

	require.Len(t, store.SaveCalls, 1, "login persists synchronously")
	assert.Equal(t, session, store.SaveCalls[0])
}

func TestLogin_EmailMatchIsCaseInsensitive(t *testing.T) {
	store := &mockStorage{}
	directory := &mockDirectory{users: []domain.User{knownAdmin()}}
	svc := newTestService(store, directory, &mockPublisher{})

	ok, err := svc.Login(context.Background(), "MARTA.VELDEN@GreenWheels.example", "longenoughpassword")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, svc.Current().Role)
}

func TestLogin_UnknownEmailSynthesizesUserIdentity(t *testing.T) {
	store := &mockStorage{}
	svc := newTestService(store, &mockDirectory{}, &mockPublisher{})

	ok, err := svc.Login(context.Background(), "new@nowhere.com", "longenoughpassword")

	require.NoError(t, err)
	require.True(t, ok)

	session := svc.Current()
	require.NotNil(t, session.Identity)
	assert.Equal(t, domain.RoleUser, session.Role)
	assert.Equal(t, "new@nowhere.com", session.Identity.Email)
	assert.Equal(t, "new", session.Identity.Name)
	assert.NotEmpty(t, session.Identity.ID)
	assert.False(t, session.Identity.Verified)
}

func TestLogin_PersistFailureKeepsPreviousSession(t *testing.T) {
	store := &mockStorage{}
	directory := &mockDirectory{users: []domain.User{knownAdmin()}}
	svc := newTestService(store, directory, &mockPublisher{})

	ok, err := svc.Login(context.Background(), "marta.velden@greenwheels.example", "longenoughpassword")
	require.True(t, ok)
	require.NoError(t, err)
	admin := svc.Current()

	store.SaveErr = errors.New("slot unavailable")
	ok, err = svc.Login(context.Background(), "new@nowhere.com", "longenoughpassword")

	assert.False(t, ok)
	assert.Error(t, err)
	assert.Equal(t, admin, svc.Current(), "failed persist must not replace the session")
}

func TestLogin_PublishFailureDoesNotFailLogin(t *testing.T) {
	store := &mockStorage{}
	publisher := &mockPublisher{PublishErr: errors.New("broker down")}
	svc := newTestService(store, &mockDirectory{}, publisher)

	ok, err := svc.Login(context.Background(), "new@nowhere.com", "longenoughpassword")

	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, publisher.Events, 1)
	assert.Equal(t, ports.SessionLogin, publisher.Events[0].Type)
}

func TestLogout_ResetsAndPersistsEmptySession(t *testing.T) {
	store := &mockStorage{}
	directory := &mockDirectory{users: []domain.User{knownAdmin()}}
	publisher := &mockPublisher{}
	svc := newTestService(store, directory, publisher)

	ok, err := svc.Login(context.Background(), "marta.velden@greenwheels.example", "longenoughpassword")
	require.True(t, ok)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	assert.Equal(t, domain.EmptySession(), svc.Current())
	require.Len(t, store.SaveCalls, 2)
	assert.Equal(t, domain.EmptySession(), store.SaveCalls[1])

	require.Len(t, publisher.Events, 2)
	assert.Equal(t, ports.SessionLogout, publisher.Events[1].Type)

	// A fresh restore from the same slot stays logged out.
	assert.Equal(t, domain.EmptySession(), svc.Restore(context.Background()))
}

func TestLogout_WithoutPriorLoginIsANoOpReset(t *testing.T) {
	store := &mockStorage{}
	publisher := &mockPublisher{}
	svc := newTestService(store, &mockDirectory{}, publisher)

	require.NoError(t, svc.Logout(context.Background()))

	assert.Equal(t, domain.EmptySession(), svc.Current())
	assert.Empty(t, publisher.Events, "no identity, no logout event")
}

func TestRestore_RoundTripReproducesSession(t *testing.T) {
	store := &mockStorage{}
	directory := &mockDirectory{users: []domain.User{knownAdmin()}}
	svc := newTestService(store, directory, &mockPublisher{})

	ok, err := svc.Login(context.Background(), "marta.velden@greenwheels.example", "longenoughpassword")
	require.True(t, ok)
	require.NoError(t, err)
	loggedIn := svc.Current()

	// Simulate a reload: a fresh service over the same slot.
	reloaded := newTestService(store, directory, &mockPublisher{})
	restored := reloaded.Restore(context.Background())

	assert.Equal(t, loggedIn, restored)
	assert.Equal(t, loggedIn, reloaded.Current())
}

func TestRestore_EmptySlotDegradesToLoggedOut(t *testing.T) {
	svc := newTestService(&mockStorage{}, &mockDirectory{}, &mockPublisher{})

	assert.Equal(t, domain.EmptySession(), svc.Restore(context.Background()))
}

func TestRestore_StorageFailureDegradesToLoggedOut(t *testing.T) {
	store := &mockStorage{LoadErr: errors.New("slot unreachable")}
	svc := newTestService(store, &mockDirectory{}, &mockPublisher{})

	assert.Equal(t, domain.EmptySession(), svc.Restore(context.Background()))
}

func TestRestore_InvariantBreakingBlobDiscarded(t *testing.T) {
	// Authenticated flag set but no identity: a tampered or truncated blob.
	store := &mockStorage{
		stored:  domain.Session{Identity: nil, Authenticated: true, Role: domain.RoleAdmin},
		hasBlob: true,
	}
	svc := newTestService(store, &mockDirectory{}, &mockPublisher{})

	assert.Equal(t, domain.EmptySession(), svc.Restore(context.Background()))
}
