package record

import (
	"strings"

	"nucleura/helios/pkg/ensdf/nuclide"
	"nucleura/helios/pkg/ensdf/quantity"
)

// Gamma is a gamma transition record. Unlike the other decay variants, its
// destination is not the surrounding level context: it is resolved from the
// transition's own properties and the dataset's level list at construction
// time.
type Gamma struct {
	Common

	// OrigLevel is the level context active when this gamma was parsed; the
	// transition originates there. Nil for unplaced gammas.
	OrigLevel *Level

	// DestLevel is the resolved destination level, or nil when no candidate
	// qualified.
	DestLevel *Level

	// Energy is the gamma-ray energy in keV.
	Energy quantity.Quantity

	// RelIntensity is the relative photon intensity.
	RelIntensity quantity.Quantity

	// Multipolarity is the multipolarity string, e.g. "E2" or "M1+E2".
	Multipolarity string

	// MixingRatio is the multipole mixing ratio delta.
	MixingRatio quantity.Quantity

	// ConversionCoeff is the total internal conversion coefficient.
	ConversionCoeff quantity.Quantity

	// TotalTransIntensity is the relative total transition intensity.
	TotalTransIntensity quantity.Quantity

	// Questionable marks an uncertain placement (qualifier "?").
	Questionable bool

	// Expected marks a transition predicted but not observed (qualifier "S").
	Expected bool

	// Attrs holds the dimensionless reduced transition probabilities parsed
	// from BE*/BM* continuation properties.
	Attrs map[string]quantity.Quantity
}

// RecordKind implements Record.
func (g *Gamma) RecordKind() Kind { return KindGamma }

// Destination implements Decay.
func (g *Gamma) Destination() *Level { return g.DestLevel }

// NewGamma constructs a gamma record from its card group, links it to its
// originating level, and resolves its destination level.
//
// The gamma is appended to the originating level's decay list whether or not
// a destination is found; an unresolved destination is a valid terminal
// state, not an error.
func NewGamma(ds *Dataset, lines []string, comments [][]string, xref []string, orig *Level) (*Gamma, error) {
	g := &Gamma{Common: newCommon(ds, comments, xref), OrigLevel: orig}
	if orig != nil {
		orig.addDecay(g)
	}

	first := lines[0]
	g.Props["E"] = field(first, 9, 19)
	g.Props["DE"] = field(first, 19, 21)
	g.Props["RI"] = field(first, 21, 29)
	g.Props["DRI"] = field(first, 29, 31)
	g.Props["M"] = field(first, 31, 41)
	g.Props["MR"] = field(first, 41, 49)
	g.Props["DMR"] = field(first, 49, 55)
	g.Props["CC"] = field(first, 55, 62)
	g.Props["DCC"] = field(first, 62, 64)
	g.Props["TI"] = field(first, 64, 74)
	g.Props["DTI"] = field(first, 74, 76)
	g.Props["C"] = field(first, 76, 77)
	g.Props["COIN"] = field(first, 78, 79)
	g.Props["Q"] = field(first, 79, 80)
	if err := loadProperties(g.Props, lines[1:]); err != nil {
		return nil, err
	}

	var err error
	if g.Energy, err = quantity.Parse(g.Props["E"], g.Props["DE"]); err != nil {
		return nil, err
	}
	if g.RelIntensity, err = quantity.Parse(g.Props["RI"], g.Props["DRI"]); err != nil {
		return nil, err
	}
	if g.MixingRatio, err = quantity.Parse(g.Props["MR"], g.Props["DMR"]); err != nil {
		return nil, err
	}
	if g.ConversionCoeff, err = quantity.Parse(g.Props["CC"], g.Props["DCC"]); err != nil {
		return nil, err
	}
	if g.TotalTransIntensity, err = quantity.Parse(g.Props["TI"], g.Props["DTI"]); err != nil {
		return nil, err
	}
	g.Multipolarity = g.Props["M"]
	g.Questionable = g.Props["Q"] == "?"
	g.Expected = g.Props["Q"] == "S"

	g.Attrs = make(map[string]quantity.Quantity)
	for k, v := range g.Props {
		if strings.HasPrefix(k, "BE") || strings.HasPrefix(k, "BM") {
			q, err := quantity.ParseNoUnit(v, "")
			if err != nil {
				return nil, err
			}
			g.Attrs[k] = q
		}
	}

	if err := g.resolveDestination(); err != nil {
		return nil, err
	}
	return g, nil
}

// resolveDestination computes the destination level of the transition and
// links it bidirectionally into the level graph.
//
// The estimated destination energy comes from the final-level property "FL"
// when present, otherwise from the originating level energy minus the
// recoil-corrected transition energy. Candidate levels are those sharing the
// estimate's reference-offset tag; the one with the smallest absolute energy
// difference wins. An empty candidate set leaves the destination absent.
func (g *Gamma) resolveDestination() error {
	var destEnergy float64
	var offset string

	if fl, ok := g.Props["FL"]; ok {
		if fl == "?" {
			return nil
		}
		q, err := quantity.Parse(fl, "")
		if err != nil {
			return err
		}
		if !q.HasValue {
			return nil
		}
		destEnergy = q.Value
		offset = q.Offset
	} else if g.OrigLevel != nil {
		if !g.Energy.HasValue || !g.OrigLevel.Energy.HasValue {
			return nil
		}
		mass, _, err := nuclide.AZ(g.Dataset.NucID)
		if err != nil || mass <= 0 {
			return nil
		}
		// Recoil correction: the level spacing exceeds the photon energy by
		// the recoil energy absorbed by the nucleus.
		eg := g.Energy.Value
		ei := eg * (1 + 0.001*eg/(float64(mass)*nuclide.AMUEnergyMeV))
		destEnergy = g.OrigLevel.Energy.Value - ei
		offset = g.Energy.Offset
	} else {
		return nil
	}

	dest := g.Dataset.nearestLevel(destEnergy, offset)
	if dest == nil {
		// No level shares this baseline; the gamma stays unresolved.
		return nil
	}
	g.DestLevel = dest
	dest.Populating = append(dest.Populating, g)
	return nil
}
