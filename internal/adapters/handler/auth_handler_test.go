package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/greenwheels/console-api/internal/adapters/repository"
	"github.com/greenwheels/console-api/internal/adapters/storage"
	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/services"
	"github.com/greenwheels/console-api/internal/observability"
)

func newAuthFixture(t *testing.T) (*AuthHandler, *services.SessionService) {
	t.Helper()
	slot := storage.NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
	users := repository.NewMemoryUserDirectory(nil)
	sessions := services.NewSessionService(slot, users, nil, zap.NewNop())
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	return NewAuthHandler(sessions, metrics, zap.NewNop()), sessions
}

func postLogin(t *testing.T, h *AuthHandler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin_MalformedBody(t *testing.T) {
	h, _ := newAuthFixture(t)

	rec := postLogin(t, h, "/login", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	h, sessions := newAuthFixture(t)

	rec := postLogin(t, h, "/login", `{"email":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.EmptySession(), sessions.Current())
}

func TestLogin_WeakConstraintFailureIsUnauthorized(t *testing.T) {
	h, sessions := newAuthFixture(t)

	rec := postLogin(t, h, "/login", `{"email":"a@b.com","password":"short"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domain.EmptySession(), sessions.Current())
}

func TestLogin_KnownStafferGetsRecordedRoleAndHome(t *testing.T) {
	h, sessions := newAuthFixture(t)

	rec := postLogin(t, h, "/login",
		`{"email":"marta.velden@greenwheels.example","password":"longenoughpassword"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.RoleAdmin, resp.Role)
	require.NotNil(t, resp.Identity)
	assert.Equal(t, "Marta Velden", resp.Identity.Name)
	assert.Equal(t, "/admin/dashboard", resp.Redirect)

	assert.True(t, sessions.Current().Authenticated)
}

func TestLogin_ReturnsToRequestedPathAfterGuardRedirect(t *testing.T) {
	h, _ := newAuthFixture(t)

	rec := postLogin(t, h, "/login?next=%2Freservations",
		`{"email":"priya.nair@greenwheels.example","password":"longenoughpassword"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.RoleStaff, resp.Role)
	assert.Equal(t, "/reservations", resp.Redirect)
}

func TestLogin_OffSiteNextIsIgnored(t *testing.T) {
	h, _ := newAuthFixture(t)

	rec := postLogin(t, h, "/login?next=//evil.example/phish",
		`{"email":"priya.nair@greenwheels.example","password":"longenoughpassword"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "/staff/panel", resp.Redirect)
}

func TestLogin_UnknownEmailBecomesFallbackUser(t *testing.T) {
	h, sessions := newAuthFixture(t)

	rec := postLogin(t, h, "/login", `{"email":"new@nowhere.com","password":"longenoughpassword"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.RoleUser, resp.Role)
	assert.Equal(t, "/", resp.Redirect)
	assert.Equal(t, domain.RoleUser, sessions.Current().Role)
}

func TestLogout_ResetsSession(t *testing.T) {
	h, sessions := newAuthFixture(t)
	postLogin(t, h, "/login", `{"email":"new@nowhere.com","password":"longenoughpassword"}`)
	require.True(t, sessions.Current().Authenticated)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.EmptySession(), sessions.Current())

	// A simulated reload sees the logged-out state too.
	assert.Equal(t, domain.EmptySession(), sessions.Restore(context.Background()))
}

func TestSession_ReflectsCurrentState(t *testing.T) {
	h, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	h.Session(rec, req)

	var session domain.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.Identity)
}

func TestLoginView_EchoesSanitizedNext(t *testing.T) {
	h, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/login?next=%2Fbikes", nil)
	rec := httptest.NewRecorder()
	h.LoginView(rec, req)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "/bikes", resp["next"])
}
