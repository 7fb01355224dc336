// Package health provides liveness and readiness probes for long-running
// helios processes. Probes are small functions checking a dependency such
// as the data directory or the cache backend; the HTTP handlers aggregate
// them for Kubernetes-style probing.
package health
