package record

import "time"

// Dataset is one parsed ENSDF text block. It owns every record and level it
// produces; records hold non-owning links back to it.
//
// A Dataset is immutable once the parse completes, except for the
// bidirectional decay links (Level.Decays and Level.Populating), which are
// filled in as gamma records are constructed during the same parse pass.
type Dataset struct {
	// NucID is the nuclide identifier from the header, e.g. "60NI".
	NucID string

	// ID is the dataset identifier, e.g. "ADOPTED LEVELS, GAMMAS".
	ID string

	// Ref is the dataset reference from the header.
	Ref string

	// Publication is the publication field from the header.
	Publication string

	// Date is the publication date parsed from the header's YYYYMM field.
	// Zero when the header carries no parseable date.
	Date time.Time

	// History holds the key/value pairs accumulated from the header's "H"
	// cards, split on "$" and "=".
	History map[string]string

	// Records are the non-level records in document order (decays, and any
	// Q-value or cross-reference card that opens in the body).
	Records []Record

	// Levels are the level records in document order.
	Levels []*Level

	// QValues, Parents, References and CrossReferences are the flat records
	// collected while the parser was still in its header state.
	QValues         []*QValue
	Parents         []*Parent
	References      []*Reference
	CrossReferences []*CrossReference

	// Comments are the raw header comment cards.
	Comments []string
}

// Gammas returns the gamma records of the dataset in document order.
func (d *Dataset) Gammas() []*Gamma {
	var out []*Gamma
	for _, r := range d.Records {
		if g, ok := r.(*Gamma); ok {
			out = append(out, g)
		}
	}
	return out
}

// nearestLevel returns the level whose energy is closest to energy among
// levels sharing the given reference-offset tag, or nil when no level
// qualifies. Levels without a known energy never qualify.
func (d *Dataset) nearestLevel(energy float64, offset string) *Level {
	var best *Level
	var bestDiff float64
	for _, l := range d.Levels {
		if l.Energy.Offset != offset || !l.Energy.HasValue {
			continue
		}
		diff := l.Energy.Value - energy
		if diff < 0 {
			diff = -diff
		}
		if best == nil || diff < bestDiff {
			best = l
			bestDiff = diff
		}
	}
	return best
}
