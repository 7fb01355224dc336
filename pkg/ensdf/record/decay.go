package record

import "nucleura/helios/pkg/ensdf/quantity"

// Decay is the capability shared by the decay record variants: every
// transition has a possibly absent, non-owning link to the level it feeds.
type Decay interface {
	Record

	// Destination returns the level this transition feeds, or nil when no
	// destination is known.
	Destination() *Level
}

// Beta is a beta-minus decay record. Like the other non-gamma decay
// variants, its destination is the level context that was current when it
// was parsed.
type Beta struct {
	Common

	// DestLevel is the level populated by this decay, or nil.
	DestLevel *Level

	// Energy is the endpoint energy in keV.
	Energy quantity.Quantity

	// Questionable marks an uncertain placement (qualifier "?").
	Questionable bool

	// Expected marks a transition predicted but not observed (qualifier "S").
	Expected bool
}

// RecordKind implements Record.
func (b *Beta) RecordKind() Kind { return KindBeta }

// Destination implements Decay.
func (b *Beta) Destination() *Level { return b.DestLevel }

// NewBeta constructs a beta record from its card group.
func NewBeta(ds *Dataset, lines []string, comments [][]string, xref []string, dest *Level) (*Beta, error) {
	b := &Beta{Common: newCommon(ds, comments, xref), DestLevel: dest}

	first := lines[0]
	b.Props["E"] = field(first, 9, 19)
	b.Props["DE"] = field(first, 19, 21)
	b.Props["IB"] = field(first, 21, 29)
	b.Props["DIB"] = field(first, 29, 31)
	b.Props["LOGFT"] = field(first, 41, 49)
	b.Props["DFT"] = field(first, 49, 55)
	b.Props["C"] = field(first, 76, 77)
	b.Props["UN"] = field(first, 77, 79)
	b.Props["Q"] = field(first, 79, 80)
	if err := loadProperties(b.Props, lines[1:]); err != nil {
		return nil, err
	}

	var err error
	if b.Energy, err = quantity.Parse(b.Props["E"], b.Props["DE"]); err != nil {
		return nil, err
	}
	b.Questionable = b.Props["Q"] == "?"
	b.Expected = b.Props["Q"] == "S"
	return b, nil
}

// EC is an electron-capture (and beta-plus) decay record.
type EC struct {
	Common

	// DestLevel is the level populated by this decay, or nil.
	DestLevel *Level
}

// RecordKind implements Record.
func (e *EC) RecordKind() Kind { return KindEC }

// Destination implements Decay.
func (e *EC) Destination() *Level { return e.DestLevel }

// NewEC constructs an electron-capture record from its card group.
func NewEC(ds *Dataset, lines []string, comments [][]string, xref []string, dest *Level) (*EC, error) {
	e := &EC{Common: newCommon(ds, comments, xref), DestLevel: dest}

	first := lines[0]
	e.Props["E"] = field(first, 9, 19)
	e.Props["DE"] = field(first, 19, 21)
	e.Props["IB"] = field(first, 21, 29)
	e.Props["DIB"] = field(first, 29, 31)
	e.Props["IE"] = field(first, 31, 39)
	e.Props["DIE"] = field(first, 39, 41)
	e.Props["LOGFT"] = field(first, 41, 49)
	e.Props["DFT"] = field(first, 49, 55)
	e.Props["TI"] = field(first, 64, 74)
	e.Props["DTI"] = field(first, 74, 76)
	e.Props["C"] = field(first, 76, 77)
	e.Props["UN"] = field(first, 77, 79)
	e.Props["Q"] = field(first, 79, 80)
	if err := loadProperties(e.Props, lines[1:]); err != nil {
		return nil, err
	}
	return e, nil
}

// Alpha is an alpha decay record.
type Alpha struct {
	Common

	// DestLevel is the level populated by this decay, or nil.
	DestLevel *Level
}

// RecordKind implements Record.
func (a *Alpha) RecordKind() Kind { return KindAlpha }

// Destination implements Decay.
func (a *Alpha) Destination() *Level { return a.DestLevel }

// NewAlpha constructs an alpha record from its card group.
func NewAlpha(ds *Dataset, lines []string, comments [][]string, xref []string, dest *Level) (*Alpha, error) {
	a := &Alpha{Common: newCommon(ds, comments, xref), DestLevel: dest}

	first := lines[0]
	a.Props["E"] = field(first, 9, 19)
	a.Props["DE"] = field(first, 19, 21)
	a.Props["IA"] = field(first, 21, 29)
	a.Props["DIA"] = field(first, 29, 31)
	a.Props["HF"] = field(first, 31, 39)
	a.Props["DHF"] = field(first, 39, 41)
	a.Props["C"] = field(first, 76, 77)
	a.Props["Q"] = field(first, 79, 80)
	if err := loadProperties(a.Props, lines[1:]); err != nil {
		return nil, err
	}
	return a, nil
}

// Particle is a (delayed-)particle emission record: proton, alpha, or
// neutron emission, prompt or following a preceding decay.
type Particle struct {
	Common

	// DestLevel is the level populated by this emission, or nil.
	DestLevel *Level

	// PromptEmission marks emission from the nuclide itself (blank column 7).
	PromptEmission bool

	// DelayedEmission marks emission following a preceding decay ("D").
	DelayedEmission bool
}

// RecordKind implements Record.
func (p *Particle) RecordKind() Kind { return KindParticle }

// Destination implements Decay.
func (p *Particle) Destination() *Level { return p.DestLevel }

// NewParticle constructs a particle emission record from its card group.
func NewParticle(ds *Dataset, lines []string, comments [][]string, xref []string, dest *Level) (*Particle, error) {
	p := &Particle{Common: newCommon(ds, comments, xref), DestLevel: dest}

	first := lines[0]
	p.Props["D"] = string(charAt(first, 7))
	p.Props["Particle"] = string(charAt(first, 8))
	p.Props["E"] = field(first, 9, 19)
	p.Props["DE"] = field(first, 19, 21)
	p.Props["IP"] = field(first, 21, 29)
	p.Props["DIP"] = field(first, 29, 31)
	p.Props["EI"] = field(first, 31, 39)
	p.Props["T"] = field(first, 39, 49)
	p.Props["DT"] = field(first, 49, 55)
	p.Props["L"] = field(first, 55, 64)
	p.Props["C"] = field(first, 76, 77)
	p.Props["COIN"] = field(first, 78, 79)
	p.Props["Q"] = field(first, 79, 80)
	if err := loadProperties(p.Props, lines[1:]); err != nil {
		return nil, err
	}

	p.PromptEmission = p.Props["D"] == " "
	p.DelayedEmission = p.Props["D"] == "D"
	return p, nil
}
