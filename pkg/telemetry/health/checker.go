package health

import (
	"context"
	"sync"
	"time"
)

// CheckFunc probes one dependency of the service. It returns nil when the
// dependency is usable, or an error describing the problem.
type CheckFunc func(ctx context.Context) error

// CheckResult is the outcome of probing one dependency.
type CheckResult struct {
	// Status is "ok" or "unhealthy".
	Status string `json:"status"`

	// Message carries the error text for an unhealthy dependency.
	Message string `json:"message,omitempty"`

	// Duration is how long the probe took.
	Duration time.Duration `json:"duration_ms,omitempty"`
}

// Status is the aggregated health of the service.
type Status struct {
	// Overall is "ok", "ready", or "degraded".
	Overall string `json:"status"`

	// Checks holds per-dependency results for readiness probes.
	Checks map[string]CheckResult `json:"checks,omitempty"`

	// Timestamp is when the probes ran.
	Timestamp time.Time `json:"timestamp"`
}

// Checker runs registered dependency probes. Typical probes for this
// service cover the data directory and the cache backend.
type Checker struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	timeout time.Duration
}

// NewChecker creates a checker. A zero timeout defaults to 5 seconds
// per probe.
func NewChecker(timeout time.Duration) *Checker {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
	}
}

// Register adds a probe under a dependency name, replacing any probe
// already registered under that name.
func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Liveness reports whether the process is running. It never probes
// dependencies, so it is safe for tight probe intervals.
func (c *Checker) Liveness(ctx context.Context) Status {
	return Status{Overall: "ok", Timestamp: time.Now()}
}

// Readiness probes every registered dependency concurrently and
// aggregates the results. Any unhealthy dependency degrades the overall
// status.
func (c *Checker) Readiness(ctx context.Context) Status {
	c.mu.RLock()
	checks := make(map[string]CheckFunc, len(c.checks))
	for name, check := range c.checks {
		checks[name] = check
	}
	c.mu.RUnlock()

	results := make(map[string]CheckResult, len(checks))
	if len(checks) == 0 {
		return Status{Overall: "ready", Checks: results, Timestamp: time.Now()}
	}

	var wg sync.WaitGroup
	var resultMu sync.Mutex
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check CheckFunc) {
			defer wg.Done()
			result := c.run(ctx, check)
			resultMu.Lock()
			results[name] = result
			resultMu.Unlock()
		}(name, check)
	}
	wg.Wait()

	overall := "ready"
	for _, r := range results {
		if r.Status == "unhealthy" {
			overall = "degraded"
		}
	}
	return Status{Overall: overall, Checks: results, Timestamp: time.Now()}
}

// run executes one probe under the checker's timeout.
func (c *Checker) run(ctx context.Context, check CheckFunc) CheckResult {
	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan error, 1)
	go func() {
		done <- check(probeCtx)
	}()

	select {
	case err := <-done:
		elapsed := time.Since(start)
		if err != nil {
			return CheckResult{Status: "unhealthy", Message: err.Error(), Duration: elapsed}
		}
		return CheckResult{Status: "ok", Duration: elapsed}
	case <-probeCtx.Done():
		return CheckResult{Status: "unhealthy", Message: "probe timed out", Duration: time.Since(start)}
	}
}
