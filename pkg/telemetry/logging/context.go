package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey contextKey = "request_id"

	// NuclideKey is the context key for nuclide identifiers (e.g. "60CO").
	NuclideKey contextKey = "nuclide"

	// DatasetKey is the context key for dataset names.
	DatasetKey contextKey = "dataset"

	// MassKey is the context key for mass-chain numbers.
	MassKey contextKey = "mass"
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithNuclide adds a nuclide identifier to the context.
func WithNuclide(ctx context.Context, nuclide string) context.Context {
	return context.WithValue(ctx, NuclideKey, nuclide)
}

// GetNuclide retrieves the nuclide identifier from the context.
func GetNuclide(ctx context.Context) string {
	if nuclide, ok := ctx.Value(NuclideKey).(string); ok {
		return nuclide
	}
	return ""
}

// WithDataset adds a dataset name to the context.
func WithDataset(ctx context.Context, dataset string) context.Context {
	return context.WithValue(ctx, DatasetKey, dataset)
}

// GetDataset retrieves the dataset name from the context.
func GetDataset(ctx context.Context) string {
	if dataset, ok := ctx.Value(DatasetKey).(string); ok {
		return dataset
	}
	return ""
}

// WithMass adds a mass-chain number to the context.
func WithMass(ctx context.Context, mass int) context.Context {
	return context.WithValue(ctx, MassKey, mass)
}

// GetMass retrieves the mass-chain number from the context.
// Returns 0 when unset.
func GetMass(ctx context.Context) int {
	if mass, ok := ctx.Value(MassKey).(int); ok {
		return mass
	}
	return 0
}

// extractContextFields pulls the known log fields out of ctx as
// alternating key/value pairs for slog.
func extractContextFields(ctx context.Context) []any {
	var fields []any
	if v := GetRequestID(ctx); v != "" {
		fields = append(fields, string(RequestIDKey), v)
	}
	if v := GetNuclide(ctx); v != "" {
		fields = append(fields, string(NuclideKey), v)
	}
	if v := GetDataset(ctx); v != "" {
		fields = append(fields, string(DatasetKey), v)
	}
	if v := GetMass(ctx); v != 0 {
		fields = append(fields, string(MassKey), v)
	}
	return fields
}
