package record

import (
	"fmt"
	"strings"

	"nucleura/helios/pkg/ensdf/ensdferr"
)

// Kind identifies a record variant. The set of kinds is closed: every card
// group resolves to exactly one of these or fails with an
// unknown-record-type error.
type Kind string

const (
	KindLevel          Kind = "level"
	KindGamma          Kind = "gamma"
	KindBeta           Kind = "beta"
	KindEC             Kind = "electron_capture"
	KindAlpha          Kind = "alpha"
	KindParticle       Kind = "particle"
	KindParent         Kind = "parent"
	KindQValue         Kind = "q_value"
	KindCrossReference Kind = "cross_reference"
	KindReference      Kind = "reference"
	KindComment        Kind = "comment"
)

// Record is the capability shared by every parsed unit: a property mapping
// of short codes to raw string values, and a non-owning link back to the
// dataset that produced it.
type Record interface {
	// RecordKind returns the variant of this record.
	RecordKind() Kind
}

// Common holds the fields shared by every multi-line record. It is embedded
// by the level, parent, and decay variants.
type Common struct {
	// Dataset is a non-owning link to the dataset this record belongs to.
	Dataset *Dataset

	// Props maps short property codes to their raw string values, filled
	// from the fixed columns of the first card and the continuation grammar.
	Props map[string]string

	// Comments are the comment blocks attached to this record.
	Comments []*GeneralComment

	// XRef are the raw cross-reference continuation cards active at this
	// record's parse position.
	XRef []string
}

func newCommon(ds *Dataset, comments [][]string, xref []string) Common {
	c := Common{
		Dataset: ds,
		Props:   make(map[string]string),
		XRef:    xref,
	}
	for _, block := range comments {
		c.Comments = append(c.Comments, NewGeneralComment(ds, block))
	}
	return c
}

// KindOf resolves a record's first card image to its variant by the type
// letter in column 7 (and column 8 for the particle family). Unknown type
// letters are an error naming the character and the raw card.
func KindOf(line string) (Kind, error) {
	switch charAt(line, 7) {
	case 'X':
		return KindCrossReference, nil
	case 'Q':
		return KindQValue, nil
	case 'L':
		return KindLevel, nil
	case 'B':
		return KindBeta, nil
	case 'E':
		return KindEC, nil
	case 'A':
		return KindAlpha, nil
	case 'G':
		return KindGamma, nil
	}
	c7 := charAt(line, 7)
	if (c7 == ' ' || c7 == 'D') && strings.ContainsRune("PAN", rune(charAt(line, 8))) {
		return KindParticle, nil
	}
	return "", &ensdferr.Error{
		Kind:    ensdferr.KindUnknownRecordType,
		Message: fmt.Sprintf("unknown record with type %q", string(c7)),
		Line:    line,
	}
}

// field returns the trimmed substring of a card image between byte columns
// a (inclusive) and b (exclusive). Constructors are handed full card images
// by the parser, but the bound is still clamped so a card with trimmed
// trailing blanks reads as if space-padded.
func field(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return strings.TrimSpace(line[a:b])
}

// charAt returns the byte at column i, or a blank when the card is shorter.
func charAt(line string, i int) byte {
	if i >= len(line) {
		return ' '
	}
	return line[i]
}
