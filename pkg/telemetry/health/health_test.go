package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLiveness(t *testing.T) {
	c := NewChecker(0)
	status := c.Liveness(context.Background())
	if status.Overall != "ok" {
		t.Errorf("Liveness().Overall = %q, want %q", status.Overall, "ok")
	}
}

func TestReadinessNoChecks(t *testing.T) {
	c := NewChecker(0)
	status := c.Readiness(context.Background())
	if status.Overall != "ready" {
		t.Errorf("Readiness().Overall = %q, want %q", status.Overall, "ready")
	}
}

func TestReadinessHealthy(t *testing.T) {
	c := NewChecker(0)
	c.Register("data_dir", func(ctx context.Context) error { return nil })
	c.Register("cache", func(ctx context.Context) error { return nil })

	status := c.Readiness(context.Background())
	if status.Overall != "ready" {
		t.Errorf("Readiness().Overall = %q, want %q", status.Overall, "ready")
	}
	if len(status.Checks) != 2 {
		t.Errorf("len(Checks) = %d, want 2", len(status.Checks))
	}
	if status.Checks["cache"].Status != "ok" {
		t.Errorf("cache check = %+v, want ok", status.Checks["cache"])
	}
}

func TestReadinessDegraded(t *testing.T) {
	c := NewChecker(0)
	c.Register("data_dir", func(ctx context.Context) error { return nil })
	c.Register("cache", func(ctx context.Context) error { return errors.New("database locked") })

	status := c.Readiness(context.Background())
	if status.Overall != "degraded" {
		t.Errorf("Readiness().Overall = %q, want %q", status.Overall, "degraded")
	}
	if status.Checks["cache"].Message != "database locked" {
		t.Errorf("cache message = %q, want the probe error", status.Checks["cache"].Message)
	}
}

func TestReadinessTimeout(t *testing.T) {
	c := NewChecker(20 * time.Millisecond)
	c.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	status := c.Readiness(context.Background())
	if status.Overall != "degraded" {
		t.Errorf("Readiness().Overall = %q, want degraded on timeout", status.Overall)
	}
}

func TestLivenessHandler(t *testing.T) {
	c := NewChecker(0)
	rec := httptest.NewRecorder()
	c.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	var status Status
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if status.Overall != "ok" {
		t.Errorf("body status = %q, want ok", status.Overall)
	}
}

func TestReadinessHandlerDegraded(t *testing.T) {
	c := NewChecker(0)
	c.Register("cache", func(ctx context.Context) error { return errors.New("down") })

	rec := httptest.NewRecorder()
	c.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandlersRejectPost(t *testing.T) {
	c := NewChecker(0)
	rec := httptest.NewRecorder()
	c.LivenessHandler()(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestVersionHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	VersionHandler("1.2.3", "abc123", "2026-01-01")(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	var info VersionInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if info.Version != "1.2.3" || info.Commit != "abc123" {
		t.Errorf("info = %+v, want the build values echoed", info)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion empty, want the runtime version")
	}
}
