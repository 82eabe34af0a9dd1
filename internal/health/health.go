package health

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// ComponentHealth represents the health of a single component
type ComponentHealth struct {
	Status   Status `json:"status"`
	Message  string `json:"message,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Response represents the full health check response
type Response struct {
	Status     Status                     `json:"status"`
	Timestamp  string                     `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// Checker performs health checks on the app's dependencies.
type Checker struct {
	db           *sql.DB
	checkTimeout time.Duration
}

// NewChecker creates a new health checker
func NewChecker(db *sql.DB) *Checker {
	return &Checker{
		db:           db,
		checkTimeout: 5 * time.Second,
	}
}

// CheckDB checks database connectivity
func (c *Checker) CheckDB(ctx context.Context) ComponentHealth {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return ComponentHealth{
			Status:   StatusUnhealthy,
			Message:  err.Error(),
			Duration: time.Since(start).String(),
		}
	}

	return ComponentHealth{
		Status:   StatusHealthy,
		Duration: time.Since(start).String(),
	}
}

// Handler serves the health check endpoint.
func (c *Checker) Handler(w http.ResponseWriter, r *http.Request) {
	dbHealth := c.CheckDB(r.Context())

	resp := Response{
		Status:    dbHealth.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Components: map[string]ComponentHealth{
			"database": dbHealth,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.Status != StatusHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(resp)
}
