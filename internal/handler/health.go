package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/geoquest/GeoQuest_Go/internal/database"
	"github.com/geoquest/GeoQuest_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
	componentDatabase       = "database"
)

// HealthResponse is returned by the liveness and readiness probes
type HealthResponse struct {
	Status     string            `json:"status"`
	Message    string            `json:"message,omitempty"`
	Components map[string]string `json:"components,omitempty"`
}

// HandleHealthz reports that the process is serving
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}

// HandleReadyz reports whether care verifications can be persisted right now
// @Summary Readiness check
// @Description 503 while the database cannot be reached
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		start := time.Now()
		err := dbPool.Ping(ctx)
		if err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed",
				"component", componentDatabase,
				"error", err,
				"elapsed", time.Since(start))
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:     healthStatusUnavailable,
				Message:    "database connection failed",
				Components: map[string]string{componentDatabase: healthStatusUnavailable},
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status:     healthStatusOK,
			Components: map[string]string{componentDatabase: healthStatusOK},
		})
	}
}
