package record

import (
	"strings"

	"nucleura/helios/pkg/ensdf/quantity"
)

// Level is a nuclear energy level.
//
// A level becomes the "current level" context for the decay records that
// follow it, until the next level record starts. Its Decays and Populating
// lists are non-owning links filled in as gamma records are constructed.
type Level struct {
	Common

	// Energy is the level energy in keV, possibly tagged with a
	// reference-offset letter.
	Energy quantity.Quantity

	// AngularMomentum is the spin/parity string, e.g. "3/2-".
	AngularMomentum string

	// HalfLife is the level half-life with its unit.
	HalfLife quantity.Quantity

	// SpectroscopicStrength is the spectroscopic strength.
	SpectroscopicStrength quantity.Quantity

	// Questionable marks a level whose existence is uncertain (qualifier "?").
	Questionable bool

	// Expected marks a level predicted but not observed (qualifier "S").
	Expected bool

	// Metastable marks an isomeric state (metastable code beginning "M").
	Metastable bool

	// Decays are the transitions originating at this level.
	Decays []*Gamma

	// Populating are the transitions whose destination resolved to this
	// level.
	Populating []*Gamma
}

// RecordKind implements Record.
func (l *Level) RecordKind() Kind { return KindLevel }

// NewLevel constructs a level from its card group. The first card carries
// the fixed-column fields; the remaining cards run through the continuation
// grammar.
func NewLevel(ds *Dataset, lines []string, comments [][]string, xref []string) (*Level, error) {
	l := &Level{Common: newCommon(ds, comments, xref)}

	first := lines[0]
	l.Props["E"] = field(first, 9, 19)
	l.Props["DE"] = field(first, 19, 21)
	l.Props["J"] = field(first, 21, 39)
	l.Props["T"] = field(first, 39, 49)
	l.Props["DT"] = field(first, 49, 55)
	l.Props["L"] = field(first, 55, 64)
	l.Props["S"] = field(first, 64, 74)
	l.Props["DS"] = field(first, 74, 76)
	l.Props["C"] = field(first, 76, 77)
	l.Props["MS"] = field(first, 77, 79)
	l.Props["Q"] = field(first, 79, 80)
	if err := loadProperties(l.Props, lines[1:]); err != nil {
		return nil, err
	}

	var err error
	if l.Energy, err = quantity.Parse(l.Props["E"], l.Props["DE"]); err != nil {
		return nil, err
	}
	if l.HalfLife, err = quantity.Parse(l.Props["T"], l.Props["DT"]); err != nil {
		return nil, err
	}
	if l.SpectroscopicStrength, err = quantity.Parse(l.Props["S"], l.Props["DS"]); err != nil {
		return nil, err
	}
	l.AngularMomentum = l.Props["J"]
	l.Questionable = l.Props["Q"] == "?"
	l.Expected = l.Props["Q"] == "S"
	l.Metastable = strings.HasPrefix(l.Props["MS"], "M")
	return l, nil
}

// addDecay links a transition originating at this level.
func (l *Level) addDecay(g *Gamma) {
	l.Decays = append(l.Decays, g)
}
