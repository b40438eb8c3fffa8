package handler

import (
	"net/http"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
	"github.com/greenwheels/console-api/internal/core/services"
)

// NavigationHandler serves the role-specific console menu.
type NavigationHandler struct {
	sessions ports.SessionService
}

func NewNavigationHandler(sessions ports.SessionService) *NavigationHandler {
	return &NavigationHandler{sessions: sessions}
}

type NavigationResponse struct {
	Role    domain.Role              `json:"role"`
	Entries []domain.NavigationEntry `json:"entries"`
}

// Entries returns the menu for the current session's role. Unknown or
// missing roles get an empty menu, never an error.
func (h *NavigationHandler) Entries(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Current()
	writeJSON(w, http.StatusOK, NavigationResponse{
		Role:    session.Role,
		Entries: services.EntriesFor(session.Role),
	})
}
