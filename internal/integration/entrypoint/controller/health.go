// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports the status of the API and its dependencies.
type HealthController struct {
	dbHealthChecker func() bool
	advisorMode     string
	mailerMode      string
}

// HealthResponse represents the health check response. Advisor and mailer
// describe the configured mode rather than liveness: the advisor falls back
// to deterministic suggestions and the mailer queue is drained by a worker,
// so neither takes the API down.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Advisor   string `json:"advisor"`
	Mailer    string `json:"mailer"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool, advisorMode, mailerMode string) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		advisorMode:     advisorMode,
		mailerMode:      mailerMode,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	} else {
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Advisor:   h.advisorMode,
		Mailer:    h.mailerMode,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	httpStatus := http.StatusOK
	if status != "ok" {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, response)
}
