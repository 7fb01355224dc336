package quantity

import (
	"strconv"
	"strings"

	"nucleura/helios/pkg/ensdf/ensdferr"
)

// Qualifier narrows the precision or meaning of a measured value.
type Qualifier string

const (
	// QualifierUnspecified means no value was given at all.
	QualifierUnspecified Qualifier = "unspecified"
	// QualifierExact means the value is stated without reservation.
	QualifierExact Qualifier = "exact"
	// QualifierLessThan means the value is an upper bound (< or LT/LE).
	QualifierLessThan Qualifier = "less_than"
	// QualifierGreaterThan means the value is a lower bound (> or GT/GE).
	QualifierGreaterThan Qualifier = "greater_than"
	// QualifierApproximate means the value is approximate (AP).
	QualifierApproximate Qualifier = "approximate"
	// QualifierCalculated means the value is calculated, not measured (CA).
	QualifierCalculated Qualifier = "calculated"
	// QualifierSystematics means the value is taken from systematics (SY).
	QualifierSystematics Qualifier = "systematics"
)

// Quantity is an immutable physical value with its uncertainty descriptor,
// qualifier, and reference-offset tag as parsed from ENSDF text.
//
// The uncertainty is kept as the opaque descriptor found in the source
// (a numeric string, a repeated-digit shorthand, or a symbolic code such as
// "CA" or "SY"); it is never resolved to a single number.
type Quantity struct {
	// Value is the numeric magnitude. Only meaningful when HasValue is true.
	Value float64

	// HasValue reports whether a numeric magnitude was present.
	HasValue bool

	// Qualifier annotates the value (exact, bound, approximate, ...).
	Qualifier Qualifier

	// Uncertainty is the raw uncertainty descriptor, trimmed.
	Uncertainty string

	// Unit is the unit token following the magnitude, if any
	// (for example "MIN" in a half-life of "10.467 MIN").
	Unit string

	// Text holds a symbolic value that carries no magnitude, such as the
	// half-life "STABLE" or the separation-energy baseline "SN".
	Text string

	// Offset is the reference-offset tag: a single letter identifying an
	// unlisted common baseline energy shared by a family of levels
	// (for example "X" in "1332+X"). Empty means the value is absolute.
	Offset string

	// HasUnit reports whether the value may carry a physical unit. Values
	// parsed with ParseNoUnit (dimensionless ratios such as reduced
	// transition probabilities) have it set to false.
	HasUnit bool
}

// qualifierCodes are the two-letter codes recognized inside a value string,
// in the order they are probed.
var qualifierCodes = []struct {
	code      string
	qualifier Qualifier
}{
	{"GT", QualifierGreaterThan},
	{"LT", QualifierLessThan},
	{"GE", QualifierGreaterThan},
	{"LE", QualifierLessThan},
	{"AP", QualifierApproximate},
	{"CA", QualifierCalculated},
	{"SY", QualifierSystematics},
}

// Parse parses an ENSDF value string and its uncertainty string into a
// Quantity that may carry a physical unit.
//
// An empty value string yields an absent value with QualifierUnspecified.
// A leading "<" or ">" or an embedded two-letter code (GT, LT, GE, LE, AP,
// CA, SY) sets the qualifier; a token after the magnitude is recorded as the
// unit; a trailing letter that is not part of the number records a
// reference-offset tag; a purely alphabetic value ("STABLE", "SN") is kept
// as symbolic text. Anything that still fails numeric parsing afterwards is
// an invalid-quantity error.
func Parse(value, uncertainty string) (Quantity, error) {
	return parse(value, uncertainty, true)
}

// ParseNoUnit parses a dimensionless value string (for example a reduced
// transition probability). Unit and reference-offset handling only apply to
// dimensioned values, so both are disabled on this path.
func ParseNoUnit(value, uncertainty string) (Quantity, error) {
	return parse(value, uncertainty, false)
}

func parse(value, uncertainty string, hasUnit bool) (Quantity, error) {
	q := Quantity{
		Qualifier:   QualifierUnspecified,
		Uncertainty: strings.TrimSpace(uncertainty),
		HasUnit:     hasUnit,
	}

	s := strings.TrimSpace(value)
	if s == "" {
		return q, nil
	}

	switch {
	case strings.HasPrefix(s, "<"):
		q.Qualifier = QualifierLessThan
		s = strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, ">"):
		q.Qualifier = QualifierGreaterThan
		s = strings.TrimSpace(s[1:])
	default:
		// Codes match whole tokens only, so that words such as "STABLE"
		// are not mistaken for an embedded "LE".
	codes:
		for _, c := range qualifierCodes {
			fields := strings.Fields(s)
			for i, f := range fields {
				if f == c.code {
					q.Qualifier = c.qualifier
					s = strings.Join(append(fields[:i:i], fields[i+1:]...), " ")
					break codes
				}
			}
		}
	}

	// A bare qualifier ("CA", "<") carries no magnitude.
	if s == "" {
		return q, nil
	}

	if hasUnit {
		if fields := strings.Fields(s); len(fields) > 1 {
			s = fields[0]
			q.Unit = strings.Join(fields[1:], " ")
		}
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		q.Value = v
		q.HasValue = true
		if q.Qualifier == QualifierUnspecified {
			q.Qualifier = QualifierExact
		}
		return q, nil
	}

	// Symbolic values such as "STABLE" or "WEAK" carry no magnitude.
	if len(s) > 1 && isAlphabetic(s) {
		q.Text = s
		return q, nil
	}

	if hasUnit {
		if last := s[len(s)-1]; isASCIILetter(last) {
			q.Offset = string(last)
			rest := strings.TrimSpace(strings.TrimSuffix(s[:len(s)-1], "+"))
			if rest == "" {
				// A bare offset tag, e.g. a level energy of "X".
				return q, nil
			}
			if v, err := strconv.ParseFloat(rest, 64); err == nil {
				q.Value = v
				q.HasValue = true
				if q.Qualifier == QualifierUnspecified {
					q.Qualifier = QualifierExact
				}
				return q, nil
			}
			if isAlphabetic(rest) {
				// A symbolic baseline, e.g. "SN+X".
				q.Text = rest
				return q, nil
			}
		}
	}

	return Quantity{}, ensdferr.Newf(ensdferr.KindInvalidQuantity,
		"cannot parse quantity value %q", value)
}

// OffsetComparable reports whether two quantities share the same energy
// baseline. Two absolute values (no offset tag) are comparable; two tagged
// values are comparable only when their tags are equal.
func (q Quantity) OffsetComparable(other Quantity) bool {
	return q.Offset == other.Offset
}

// String renders the quantity roughly as it appeared in the source.
func (q Quantity) String() string {
	var sb strings.Builder
	switch q.Qualifier {
	case QualifierLessThan:
		sb.WriteString("<")
	case QualifierGreaterThan:
		sb.WriteString(">")
	case QualifierApproximate:
		sb.WriteString("~")
	}
	if q.HasValue {
		sb.WriteString(strconv.FormatFloat(q.Value, 'g', -1, 64))
	}
	if q.Text != "" {
		sb.WriteString(q.Text)
	}
	if q.Offset != "" {
		if q.HasValue || q.Text != "" {
			sb.WriteString("+")
		}
		sb.WriteString(q.Offset)
	}
	if q.Unit != "" {
		sb.WriteString(" ")
		sb.WriteString(q.Unit)
	}
	if sb.Len() == 0 {
		return "?"
	}
	if q.Uncertainty != "" {
		sb.WriteString(" ")
		sb.WriteString(q.Uncertainty)
	}
	return sb.String()
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isASCIILetter(s[i]) {
			return false
		}
	}
	return true
}
