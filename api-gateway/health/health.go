package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/snazzy/storefront/api-gateway/config"
	"github.com/snazzy/storefront/pkg/logger"
)

// BackendHealth represents the health status of the storefront backend
type BackendHealth struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"` // healthy, unhealthy
	URL       string        `json:"url"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway string        `json:"gateway"`
	Status  string        `json:"status"`
	Backend BackendHealth `json:"backend"`
	Uptime  time.Duration `json:"uptime_seconds"`
}

// HealthChecker checks health of the storefront backend
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckBackend probes the backend's health endpoint
func (h *HealthChecker) CheckBackend(ctx context.Context) BackendHealth {
	start := time.Now()
	backend := h.config.Backend
	healthURL := backend.BaseURL + backend.HealthCheck

	result := BackendHealth{
		Name:      backend.Name,
		URL:       backend.BaseURL,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, "GET", healthURL, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.Latency = time.Since(start)
		return result
	}

	resp, err := h.client.Do(req)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to reach service: %v", err)
		result.Latency = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.Latency = time.Since(start)

	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
	}

	return result
}

// Check probes the backend and reports overall gateway health
func (h *HealthChecker) Check(ctx context.Context) GatewayHealth {
	backend := h.CheckBackend(ctx)

	if backend.Status == "healthy" {
		logger.Logger.Debug().
			Str("backend", backend.Name).
			Dur("latency", backend.Latency).
			Msg("Backend health check")
	} else {
		logger.Logger.Warn().
			Str("backend", backend.Name).
			Str("error", backend.Error).
			Msg("Backend health check failed")
	}

	return GatewayHealth{
		Gateway: "api-gateway",
		Status:  backend.Status,
		Backend: backend,
		Uptime:  time.Since(h.startTime),
	}
}

// QuickCheck reports on the gateway itself, without probing the backend
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}
