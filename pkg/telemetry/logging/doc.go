// Package logging provides structured logging on top of log/slog.
//
// Loggers are configured with a level and output format, and carry
// request-scoped fields (request ID, nuclide, dataset, mass chain)
// extracted from a context.Context.
package logging
