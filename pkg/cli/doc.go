// Package cli provides output formatting and signal handling helpers
// for the helios command.
package cli
