// Package quantity parses ENSDF value/uncertainty pairs into physical
// quantities.
//
// ENSDF expresses measured values as free-form text: a magnitude that may be
// prefixed with a relational symbol ("<1.5"), annotated with a two-letter
// code ("4.2 AP", "CA"), or suffixed with a reference-offset tag naming an
// unlisted baseline energy ("1332+X"). The uncertainty column is an opaque
// descriptor (a number, a repeated-digit shorthand, or a symbolic code) and
// is stored verbatim.
//
// Parsing is pure: constructing a Quantity never mutates shared state, and
// two quantities are only ever compared for offset compatibility, never for
// full equality.
package quantity
