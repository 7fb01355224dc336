package ensdf

import (
	"nucleura/helios/pkg/ensdf/nuclide"
	"nucleura/helios/pkg/ensdf/record"
)

// Nucleus is a nuclide together with its adopted level scheme.
type Nucleus struct {
	// Mass is the mass number A.
	Mass int

	// Protons is the proton number Z.
	Protons int

	// Adopted is the parsed adopted-levels dataset.
	Adopted *record.Dataset
}

// NewNucleus wraps an adopted-levels dataset.
func NewNucleus(mass, protons int, adopted *record.Dataset) *Nucleus {
	return &Nucleus{
		Mass:    mass,
		Protons: protons,
		Adopted: adopted,
	}
}

// ID returns the canonical nuclide identifier (e.g. "60CO").
func (n *Nucleus) ID() (string, error) {
	return nuclide.ID(n.Mass, n.Protons)
}

// Levels returns the level scheme in dataset order.
func (n *Nucleus) Levels() []*record.Level {
	if n.Adopted == nil {
		return nil
	}
	return n.Adopted.Levels
}

// GroundState returns the lowest-lying level, or nil when the dataset
// has no levels.
func (n *Nucleus) GroundState() *record.Level {
	levels := n.Levels()
	if len(levels) == 0 {
		return nil
	}
	return levels[0]
}

// Isomers returns the long-lived states of the nuclide: the ground
// state followed by every level flagged metastable.
func (n *Nucleus) Isomers() []*record.Level {
	levels := n.Levels()
	if len(levels) == 0 {
		return nil
	}

	isomers := []*record.Level{levels[0]}
	for _, lvl := range levels[1:] {
		if lvl.Metastable {
			isomers = append(isomers, lvl)
		}
	}
	return isomers
}

// Gammas returns every gamma transition in the level scheme.
func (n *Nucleus) Gammas() []*record.Gamma {
	if n.Adopted == nil {
		return nil
	}
	return n.Adopted.Gammas()
}
