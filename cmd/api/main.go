package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/greenwheels/console-api/internal/adapters/handler"
	"github.com/greenwheels/console-api/internal/adapters/messaging"
	appmiddleware "github.com/greenwheels/console-api/internal/adapters/middleware"
	"github.com/greenwheels/console-api/internal/adapters/repository"
	"github.com/greenwheels/console-api/internal/adapters/storage"
	"github.com/greenwheels/console-api/internal/config"
	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
	"github.com/greenwheels/console-api/internal/core/services"
	"github.com/greenwheels/console-api/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := observability.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	metrics := observability.NewMetrics(nil)

	var (
		sessionSlot ports.SessionStorage
		redisClient *redis.Client
	)
	switch cfg.SessionBackend {
	case "redis":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		cb := config.NewCircuitBreaker("Redis-Session", logger)
		sessionSlot = storage.NewRedisStorage(redisClient, cfg.SessionKey, cb)
	default:
		sessionSlot = storage.NewFileStorage(cfg.SessionFile)
	}

	var events ports.SessionEventPublisher = messaging.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		broker, err := messaging.NewRabbitMQBroker(cfg.RabbitMQURL, cfg.SessionEventQueue, logger)
		if err != nil {
			logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
		}
		defer broker.Close()
		events = broker
	}

	users := repository.NewMemoryUserDirectory(nil)
	fleet := repository.NewMemoryFleetRepository()

	sessions := services.NewSessionService(sessionSlot, users, events, logger)
	restored := sessions.Restore(ctx)
	metrics.RecordRestore(restored.Authenticated)
	logger.Info("session restored",
		zap.Bool("authenticated", restored.Authenticated),
		zap.String("role", string(restored.Role)),
	)

	guard := appmiddleware.NewGuard(sessions, metrics, logger)
	authHandler := handler.NewAuthHandler(sessions, metrics, logger)
	navHandler := handler.NewNavigationHandler(sessions)
	fleetHandler := handler.NewFleetHandler(fleet, users)
	healthHandler := handler.NewHealthHandler(redisClient, sessionSlot)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.CORS(cfg.AllowedOrigins))

	// Health probes and metrics stay outside the guard.
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Login is public; attempts are rate limited per client IP.
	r.With(httprate.LimitByIP(cfg.LoginRateLimit, time.Minute)).
		Post("/login", authHandler.Login)
	r.Get("/login", authHandler.LoginView)

	// Guarded console routes. Each carries its allow-set; an empty set
	// means any authenticated session.
	r.With(guard.Protect()).Get("/", fleetHandler.Home)
	r.With(guard.Protect()).Get("/session", authHandler.Session)
	r.With(guard.Protect()).Get("/navigation", navHandler.Entries)
	r.With(guard.Protect()).Post("/logout", authHandler.Logout)

	r.With(guard.Protect(domain.RoleAdmin)).Get("/admin/dashboard", fleetHandler.AdminDashboard)
	r.With(guard.Protect(domain.RoleAdmin)).Get("/admin/users", fleetHandler.Users)
	r.With(guard.Protect(domain.RoleStaff)).Get("/staff/panel", fleetHandler.StaffPanel)
	r.With(guard.Protect(domain.RoleStationAdmin)).Get("/station/dashboard", fleetHandler.StationDashboard)
	r.With(guard.Protect(domain.RoleMaintenance)).Get("/maintenance/dashboard", fleetHandler.MaintenanceDashboard)
	r.With(guard.Protect(domain.RoleAdmin, domain.RoleStationAdmin)).Get("/stations", fleetHandler.Stations)
	r.With(guard.Protect(domain.RoleAdmin, domain.RoleMaintenance)).Get("/maintenance/reports", fleetHandler.Reports)
	r.With(guard.Protect(domain.RoleAdmin, domain.RoleStaff, domain.RoleStationAdmin)).Get("/bikes", fleetHandler.Bikes)
	r.With(guard.Protect(domain.RoleAdmin, domain.RoleStaff)).Get("/reservations", fleetHandler.Reservations)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
