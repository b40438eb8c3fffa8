package handler

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenwheels/console-api/internal/core/ports"
)

type HealthHandler struct {
	redisClient *redis.Client
	storage     ports.SessionStorage
	startTime   time.Time
	version     string
}

// NewHealthHandler wires the readiness dependencies. redisClient is nil
// when the file session backend is in use.
func NewHealthHandler(redisClient *redis.Client, storage ports.SessionStorage) *HealthHandler {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "unknown"
	}
	return &HealthHandler{
		redisClient: redisClient,
		storage:     storage,
		startTime:   time.Now(),
		version:     version,
	}
}

// HealthResponse follows Kubernetes/OpenShift health check conventions
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health is a simple liveness check - just confirms the process is running
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks:    map[string]Check{"process": {Status: "UP"}},
	})
}

// Ready checks whether the service can serve traffic (readiness probe)
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]Check)
	status := "UP"
	httpStatus := http.StatusOK

	storageCheck := h.checkSessionStorage()
	checks["session_storage"] = storageCheck
	if storageCheck.Status != "UP" {
		status = "DOWN"
		httpStatus = http.StatusServiceUnavailable
	}

	if h.redisClient != nil {
		redisCheck := h.checkRedis()
		checks["redis"] = redisCheck
		if redisCheck.Status != "UP" {
			status = "DOWN"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, httpStatus, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}

// Live is an alias for Health - simple liveness check
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}

func (h *HealthHandler) checkSessionStorage() Check {
	if h.storage == nil {
		return Check{Status: "DOWN", Message: "Session storage is not initialized"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// An empty slot is healthy; only transport failures are not.
	if _, err := h.storage.Load(ctx); err != nil && !errors.Is(err, ports.ErrNoSession) {
		return Check{Status: "DOWN", Message: "Cannot read session slot"}
	}
	return Check{Status: "UP"}
}

func (h *HealthHandler) checkRedis() Check {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		return Check{Status: "DOWN", Message: "Cannot connect to Redis"}
	}
	return Check{Status: "UP"}
}
