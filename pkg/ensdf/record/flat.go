package record

// Parent describes the decaying parent nuclide of a decay dataset. It is a
// single-card record collected while the dataset header is being read; its
// continuation cards, if any, run through the property grammar.
type Parent struct {
	Common
}

// RecordKind implements Record.
func (p *Parent) RecordKind() Kind { return KindParent }

// NewParent constructs a parent record from its card group.
func NewParent(ds *Dataset, lines []string) (*Parent, error) {
	p := &Parent{Common: newCommon(ds, nil, nil)}

	first := lines[0]
	p.Props["E"] = field(first, 9, 19)
	p.Props["DE"] = field(first, 19, 21)
	p.Props["J"] = field(first, 21, 39)
	p.Props["T"] = field(first, 39, 49)
	p.Props["DT"] = field(first, 49, 55)
	p.Props["QP"] = field(first, 64, 74)
	p.Props["DQP"] = field(first, 74, 76)
	p.Props["ION"] = field(first, 76, 80)
	if err := loadProperties(p.Props, lines[1:]); err != nil {
		return nil, err
	}
	return p, nil
}

// ValueUnc is a raw value/uncertainty string pair from a fixed-field record.
// Q-value cards keep their fields unparsed; callers that need numbers run
// them through the quantity package.
type ValueUnc struct {
	Value       string
	Uncertainty string
}

// QValue carries the mass-difference energies of a nuclide: the beta-minus
// Q-value, the neutron and proton separation energies, and the alpha decay
// Q-value, all in keV.
type QValue struct {
	// Dataset is a non-owning link to the owning dataset.
	Dataset *Dataset

	QBetaMinus        ValueUnc
	NeutronSeparation ValueUnc
	ProtonSeparation  ValueUnc
	AlphaDecay        ValueUnc

	// Ref is the reference for the Q-values.
	Ref string
}

// RecordKind implements Record.
func (q *QValue) RecordKind() Kind { return KindQValue }

// NewQValue constructs a Q-value record from a single card image.
func NewQValue(ds *Dataset, line string) *QValue {
	return &QValue{
		Dataset:           ds,
		QBetaMinus:        ValueUnc{field(line, 9, 19), field(line, 19, 21)},
		NeutronSeparation: ValueUnc{field(line, 21, 29), field(line, 29, 31)},
		ProtonSeparation:  ValueUnc{field(line, 31, 39), field(line, 39, 41)},
		AlphaDecay:        ValueUnc{field(line, 41, 49), field(line, 49, 55)},
		Ref:               field(line, 55, 80),
	}
}

// CrossReference points at another dataset that also assigns this nuclide's
// levels, identified by a one-letter symbol used in level XREF fields.
type CrossReference struct {
	// Dataset is a non-owning link to the owning dataset.
	Dataset *Dataset

	// Symbol is the one-letter dataset symbol from column 8.
	Symbol string

	// DatasetID is the identifier of the referenced dataset.
	DatasetID string
}

// RecordKind implements Record.
func (x *CrossReference) RecordKind() Kind { return KindCrossReference }

// NewCrossReference constructs a cross-reference record from a single card.
func NewCrossReference(ds *Dataset, line string) *CrossReference {
	return &CrossReference{
		Dataset:   ds,
		Symbol:    string(charAt(line, 8)),
		DatasetID: field(line, 9, 39),
	}
}

// Reference resolves a keynumber used elsewhere in the dataset to its full
// literature reference.
type Reference struct {
	// Dataset is a non-owning link to the owning dataset.
	Dataset *Dataset

	// Mass is the mass number the reference applies to.
	Mass string

	// KeyNum is the keynumber, e.g. "1998NI05".
	KeyNum string

	// Reference is the full literature reference.
	Reference string
}

// RecordKind implements Record.
func (r *Reference) RecordKind() Kind { return KindReference }

// NewReference constructs a reference record from a single card image.
func NewReference(ds *Dataset, line string) *Reference {
	return &Reference{
		Dataset:   ds,
		Mass:      field(line, 0, 3),
		KeyNum:    field(line, 9, 17),
		Reference: field(line, 17, 80),
	}
}

// GeneralComment is a block of comment cards attached to a record or to the
// dataset itself. The text is kept verbatim; comment markup is not
// interpreted.
type GeneralComment struct {
	// Dataset is a non-owning link to the owning dataset.
	Dataset *Dataset

	// Lines are the raw comment card images.
	Lines []string
}

// RecordKind implements Record.
func (c *GeneralComment) RecordKind() Kind { return KindComment }

// NewGeneralComment constructs a comment record from a comment block.
func NewGeneralComment(ds *Dataset, lines []string) *GeneralComment {
	return &GeneralComment{Dataset: ds, Lines: lines}
}
