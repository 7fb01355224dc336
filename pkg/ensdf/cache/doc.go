// Package cache stores raw dataset text keyed by nuclide and dataset
// name, so repeated lookups avoid re-reading mass-chain files.
//
// Two backends are provided: MemoryBackend, a bounded in-process map,
// and SQLiteBackend, a persistent store backed by a SQLite database.
// Sweeper removes stale entries on a cron schedule.
package cache
