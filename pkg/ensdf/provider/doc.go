// Package provider retrieves raw ENSDF dataset text.
//
// The Provider interface abstracts where dataset text comes from; the
// parsing packages never touch storage. FileProvider reads the standard
// ENSDF distribution layout (one "ensdf.NNN" file per mass number, datasets
// separated by blank lines), MemoryProvider serves tests, and Watcher
// reports changed mass-chain files so cached datasets can be invalidated.
package provider
