package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performHealthCheck(t *testing.T, c *HealthController) (int, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", c.Check)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(rec, req)

	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rec.Code, body
}

func TestHealthController_Check(t *testing.T) {
	t.Run("reports ok with dependency modes", func(t *testing.T) {
		c := NewHealthController(func() bool { return true }, "gemini", "resend")

		code, body := performHealthCheck(t, c)
		if code != http.StatusOK {
			t.Errorf("expected status 200, got %d", code)
		}
		if body.Status != "ok" || body.Database != "connected" {
			t.Errorf("unexpected body %+v", body)
		}
		if body.Advisor != "gemini" || body.Mailer != "resend" {
			t.Errorf("unexpected dependency modes %+v", body)
		}
		if body.Timestamp == "" {
			t.Error("expected a timestamp")
		}
	})

	t.Run("degrades when the database is unreachable", func(t *testing.T) {
		c := NewHealthController(func() bool { return false }, "fallback", "disabled")

		code, body := performHealthCheck(t, c)
		if code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", code)
		}
		if body.Status != "degraded" || body.Database != "disconnected" {
			t.Errorf("unexpected body %+v", body)
		}
	})
}
