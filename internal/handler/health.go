package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/BabyBank_Go/internal/logger"
)

// readinessTimeout bounds each dependency check
const readinessTimeout = 2 * time.Second

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HealthChecker pings one dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HealthCheckFunc adapts a ping function to HealthChecker
type HealthCheckFunc func(ctx context.Context) error

func (f HealthCheckFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// HandleHealthz answers as long as the process is serving
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}

// HandleReadyz pings every configured dependency in parallel. The memory backend
// registers none, so it is always ready.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, healthy := runChecks(r.Context(), checks)
		if !healthy {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  statusUnavailable,
				Message: "dependency check failed",
				Checks:  results,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Checks: results})
	}
}

func runChecks(ctx context.Context, checks map[string]HealthChecker) (map[string]string, bool) {
	log := logger.FromContext(ctx)

	var (
		mu      sync.Mutex
		results = make(map[string]string, len(checks))
		healthy = true
		g       errgroup.Group
	)
	for name, checker := range checks {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
			defer cancel()

			status := statusOK
			if err := checker.CheckHealth(checkCtx); err != nil {
				log.Error("Readiness check failed", "dependency", name, "error", err)
				status = statusUnavailable
			}

			mu.Lock()
			defer mu.Unlock()
			results[name] = status
			healthy = healthy && status == statusOK
			return nil
		})
	}
	_ = g.Wait()
	return results, healthy
}
