package parser

import (
	"strings"
	"time"

	"nucleura/helios/pkg/ensdf/ensdferr"
	"nucleura/helios/pkg/ensdf/record"
)

// Parser turns the raw text of one ENSDF dataset into a typed, cross-linked
// record model. A Parser is stateless and safe for concurrent use; all parse
// state lives in local variables of a single Parse call.
type Parser struct{}

// New creates a new dataset parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses one dataset. The first line is the dataset header; the
// remaining lines are classified and grouped into records by the body state
// machine. Parse returns either a fully constructed dataset or the first
// error encountered, with the offending card image attached; there is no
// partial result.
func (p *Parser) Parse(text string) (*record.Dataset, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ensdferr.New(ensdferr.KindIO, "empty dataset text")
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	ds := parseHeader(lines[0])

	body := lines[1:]
	if n := len(body); n > 0 && strings.TrimSpace(body[n-1]) == "" {
		body = body[:n-1]
	}

	if err := p.parseBody(ds, body); err != nil {
		return nil, err
	}
	return ds, nil
}

// parseHeader reads the dataset identification card. Header fields are
// sliced leniently: a header with trimmed trailing blanks reads as if
// space-padded.
func parseHeader(line string) *record.Dataset {
	ds := &record.Dataset{
		NucID:       headerField(line, 0, 5),
		ID:          headerField(line, 9, 39),
		Ref:         headerField(line, 39, 65),
		Publication: headerField(line, 65, 74),
		History:     make(map[string]string),
	}
	if t, err := time.Parse("200601", headerField(line, 74, 80)); err == nil {
		ds.Date = t
	}
	return ds
}

// parseBody runs the two-state classification machine over the dataset body.
// The machine starts in the header state, collecting the flat records that
// precede the level scheme, and switches to the body state on the first
// record-opening card. The body state never returns to the header state.
func (p *Parser) parseBody(ds *record.Dataset, body []string) error {
	var (
		inHeader   = true
		group      []string   // cards of the pending record
		groupLine  int        // dataset line number of the pending record's first card
		comments   [][]string // comment blocks attached after the pending record opened
		xref       []string   // cross-reference continuation cards
		current    *record.Level
		historyBuf strings.Builder
	)

	closePending := func() error {
		if len(group) == 0 {
			return nil
		}
		kind, err := record.KindOf(group[0])
		if err != nil {
			return ensdferr.WithLine(err, group[0], groupLine)
		}
		if kind == record.KindLevel {
			lvl, err := record.NewLevel(ds, group, comments, xref)
			if err != nil {
				return ensdferr.WithLine(err, group[0], groupLine)
			}
			ds.Levels = append(ds.Levels, lvl)
			current = lvl
			return nil
		}
		rec, err := buildRecord(ds, kind, group, comments, xref, current)
		if err != nil {
			return ensdferr.WithLine(err, group[0], groupLine)
		}
		ds.Records = append(ds.Records, rec)
		return nil
	}

	for i, line := range body {
		lineNo := i + 2 // the dataset header is line 1

		if len(line) < cardWidth {
			return &ensdferr.Error{
				Kind:       ensdferr.KindMalformedLine,
				Message:    "card image shorter than 80 columns",
				Line:       line,
				LineNumber: lineNo,
			}
		}

		if inHeader {
			if isCommentMarker(line[6]) {
				ds.Comments = append(ds.Comments, line)
				continue
			}
			if isRecordOpener(line) {
				// The level scheme starts here; reprocess this card under
				// body rules.
				inHeader = false
			} else {
				if err := p.headerRecord(ds, line, &historyBuf); err != nil {
					return ensdferr.WithLine(err, line, lineNo)
				}
				continue
			}
		}

		switch {
		case isRecordStart(line):
			if err := closePending(); err != nil {
				return err
			}
			comments = nil
			xref = nil
			group = []string{line}
			groupLine = lineNo

		case line[5:7] == "X ":
			xref = append(xref, line)

		case line[6] == ' ':
			group = append(group, line)

		case isCommentBlockStart(line):
			comments = append(comments, []string{line})

		case isCommentContinuation(line[6]):
			if len(comments) == 0 {
				return &ensdferr.Error{
					Kind:       ensdferr.KindMalformedLine,
					Message:    "comment continuation without an open comment block",
					Line:       line,
					LineNumber: lineNo,
				}
			}
			last := len(comments) - 1
			comments[last] = append(comments[last], line)

		default:
			// A broken card: recover by treating it as a continuation of the
			// current record.
			group = append(group, line)
		}
	}

	if err := closePending(); err != nil {
		return err
	}

	parseHistory(ds, historyBuf.String())
	return nil
}

// headerRecord dispatches a header-state card to its flat record list.
// Cards that match no header signature are ignored, as are normalization
// records, which are not modeled.
func (p *Parser) headerRecord(ds *record.Dataset, line string, historyBuf *strings.Builder) error {
	switch {
	case line[7] == 'X':
		ds.CrossReferences = append(ds.CrossReferences, record.NewCrossReference(ds, line))
	case line[7] == 'P':
		parent, err := record.NewParent(ds, []string{line})
		if err != nil {
			return err
		}
		ds.Parents = append(ds.Parents, parent)
	case line[7] == 'R':
		ds.References = append(ds.References, record.NewReference(ds, line))
	case upper(line[7]) == 'Q':
		ds.QValues = append(ds.QValues, record.NewQValue(ds, line))
	case upper(line[7]) == 'H':
		historyBuf.WriteString(line[9:cardWidth])
		historyBuf.WriteString(" ")
	case upper(line[7]) == 'N':
		// Normalization records are not modeled.
	}
	return nil
}

// buildRecord constructs the record variant for a closed card group. The
// dispatch is exhaustive over the closed set of kinds; level records are
// handled by the caller so that the current-level context is updated.
func buildRecord(ds *record.Dataset, kind record.Kind, group []string, comments [][]string, xref []string, current *record.Level) (record.Record, error) {
	switch kind {
	case record.KindGamma:
		return record.NewGamma(ds, group, comments, xref, current)
	case record.KindBeta:
		return record.NewBeta(ds, group, comments, xref, current)
	case record.KindEC:
		return record.NewEC(ds, group, comments, xref, current)
	case record.KindAlpha:
		return record.NewAlpha(ds, group, comments, xref, current)
	case record.KindParticle:
		return record.NewParticle(ds, group, comments, xref, current)
	case record.KindQValue:
		// Q-value and cross-reference cards are normally intercepted by the
		// header state; the body paths are kept for completeness.
		return record.NewQValue(ds, group[0]), nil
	case record.KindCrossReference:
		return record.NewCrossReference(ds, group[0]), nil
	default:
		return nil, ensdferr.Newf(ensdferr.KindUnknownRecordType,
			"no constructor for record kind %q", kind)
	}
}

// parseHistory splits the accumulated "H" card text into the dataset's
// history mapping. Entries are "$"-separated KEY=VALUE pairs; a trailing
// empty segment is discarded and segments without "=" are skipped.
func parseHistory(ds *record.Dataset, history string) {
	entries := strings.Split(history, "$")
	if n := len(entries); n > 0 && strings.TrimSpace(entries[n-1]) == "" {
		entries = entries[:n-1]
	}
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			// Probably a continuation broken across cards; skip it.
			continue
		}
		ds.History[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
}

func headerField(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return strings.TrimSpace(line[a:b])
}
