package ensdferr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes the type of error encountered while parsing ENSDF data.
type Kind string

const (
	// KindMalformedLine indicates a card image that violates the fixed
	// 80-column layout (for example, a body line shorter than a full card).
	KindMalformedLine Kind = "malformed_line"

	// KindUnknownRecordType indicates a record whose type columns do not
	// match any known record signature.
	KindUnknownRecordType Kind = "unknown_record_type"

	// KindInvalidProperty indicates a continuation-field entry that matches
	// none of the property grammar rules.
	KindInvalidProperty Kind = "invalid_property"

	// KindInvalidQuantity indicates a value or uncertainty string that could
	// not be parsed into a physical quantity.
	KindInvalidQuantity Kind = "invalid_quantity"

	// KindIO indicates a failure in an external collaborator, such as a
	// provider that could not retrieve a dataset.
	KindIO Kind = "io"
)

// Error is a parse error with the offending card image attached for
// diagnostics. The first Error raised aborts the whole dataset parse;
// callers never receive a partially constructed dataset.
type Error struct {
	// Kind is the category of error.
	Kind Kind

	// Message is a human-readable description of the problem.
	Message string

	// Line is the offending raw card image, if one is known.
	Line string

	// LineNumber is the 1-based position of Line within the dataset,
	// or 0 when the position is unknown.
	LineNumber int
}

// Error implements the error interface. It returns the category and message,
// followed by the offending card image when one is attached.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))
	if e.Line != "" {
		if e.LineNumber > 0 {
			sb.WriteString(fmt.Sprintf("\n  line %d: %q", e.LineNumber, e.Line))
		} else {
			sb.WriteString(fmt.Sprintf("\n  line: %q", e.Line))
		}
	}
	return sb.String()
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithLine returns a copy of the error with the offending card image attached.
// It is a no-op for errors that are not *Error.
func WithLine(err error, line string, number int) error {
	var pe *Error
	if !errors.As(err, &pe) {
		return err
	}
	clone := *pe
	if clone.Line == "" {
		clone.Line = line
	}
	if clone.LineNumber == 0 {
		clone.LineNumber = number
	}
	return &clone
}

// IsKind reports whether err (or any error it wraps) is an ENSDF parse error
// of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}
