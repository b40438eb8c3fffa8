package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
	"github.com/greenwheels/console-api/internal/core/services"
	"github.com/greenwheels/console-api/internal/observability"
)

// AuthHandler serves the login and logout endpoints and the current-session
// view.
type AuthHandler struct {
	sessions ports.SessionService
	metrics  *observability.Metrics
	logger   *zap.Logger
	validate *validator.Validate
}

func NewAuthHandler(sessions ports.SessionService, metrics *observability.Metrics, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message  string           `json:"message"`
	Identity *domain.Identity `json:"identity,omitempty"`
	Role     domain.Role      `json:"role,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
}

// Login authenticates the console. The only checks are the two weak
// structural constraints enforced by the session service; there are no real
// credentials. On success the response names where to navigate next: the
// "next" query parameter when present, the role's home path otherwise.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ok, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("login persist failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save session")
		return
	}
	h.metrics.RecordLogin(ok)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := h.sessions.Current()
	writeJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Identity: session.Identity,
		Role:     session.Role,
		Redirect: redirectTarget(r, session.Role),
	})
}

// LoginView answers GET /login so the frontend knows where a successful
// login should land. Transient navigation state only; never stored.
func (h *AuthHandler) LoginView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"next": sanitizeNext(r.URL.Query().Get("next")),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		h.logger.Error("logout persist failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Session returns the current session for display purposes.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessions.Current())
}

// redirectTarget picks the post-login destination: a safe "next" parameter
// when the guard sent the user here, the role's home otherwise.
func redirectTarget(r *http.Request, role domain.Role) string {
	if next := sanitizeNext(r.URL.Query().Get("next")); next != "" {
		return next
	}
	return services.FallbackPath(role)
}

// sanitizeNext only accepts same-site absolute paths, so the login redirect
// cannot be pointed off-site.
func sanitizeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
