// Package nuclide converts between ENSDF nuclide identifiers and
// (mass, proton) pairs, and carries the physical constants the parsing
// packages need.
package nuclide
