package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
	"github.com/greenwheels/console-api/internal/core/services"
	"github.com/greenwheels/console-api/internal/observability"
)

// Guard translates route-guard decisions into HTTP. It owns no policy of
// its own: the verdict comes entirely from services.Decide over the current
// session, the route's allow-set, and the requested path.
type Guard struct {
	sessions ports.SessionService
	metrics  *observability.Metrics
	logger   *zap.Logger
}

func NewGuard(sessions ports.SessionService, metrics *observability.Metrics, logger *zap.Logger) *Guard {
	return &Guard{sessions: sessions, metrics: metrics, logger: logger}
}

// Protect gates a route behind the given allow-set. An empty set means any
// authenticated session may pass. Render runs the next handler; both
// redirect outcomes answer 303 with the computed location, carrying the
// originally requested path when the target is the login view.
func (g *Guard) Protect(requiredRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := g.sessions.Current()
			decision := services.Decide(session, requiredRoles, r.URL.Path)
			g.metrics.RecordGuardDecision(decision.Outcome)

			if decision.Outcome == services.OutcomeRender {
				next.ServeHTTP(w, r)
				return
			}

			g.logger.Debug("navigation redirected",
				zap.String("path", r.URL.Path),
				zap.String("outcome", string(decision.Outcome)),
				zap.String("role", string(session.Role)),
			)
			http.Redirect(w, r, decision.Location, http.StatusSeeOther)
		})
	}
}
