package parser

// cardWidth is the fixed width of an ENSDF card image.
const cardWidth = 80

// decayLevelLetters are the column-7 type letters that open a level or
// decay record: Beta, Alpha, Gamma, EC, Level.
const decayLevelLetters = "bagel"

// particleLetters are the column-8 letters of the particle emission family:
// proton, alpha, neutron.
const particleLetters = "PAN"

// isRecordOpener reports whether a card's type columns carry a level/decay
// signature: column 7 is one of the decay/level letters (either case), or
// column 7 is blank or "D" with a particle letter at column 8.
func isRecordOpener(line string) bool {
	c7 := line[7]
	if containsByte(decayLevelLetters, lower(c7)) {
		return true
	}
	return (c7 == ' ' || c7 == 'D') && containsByte(particleLetters, line[8])
}

// isRecordStart reports whether a card starts a new record: an opener
// signature with blank continuation and comment columns.
func isRecordStart(line string) bool {
	return isRecordOpener(line) && line[5] == ' ' && line[6] == ' '
}

// isCommentMarker reports whether a column-6 character marks a comment card
// (comment, documentation, or tabular comment).
func isCommentMarker(c byte) bool {
	switch upper(c) {
	case 'C', 'D', 'T':
		return true
	}
	return false
}

// isCommentBlockStart reports whether a card opens a new comment block:
// blank continuation column with a comment marker at column 6.
func isCommentBlockStart(line string) bool {
	return line[5] == ' ' && isCommentMarker(line[6])
}

// isCommentContinuation reports whether a column-6 character continues the
// most recently opened comment block.
func isCommentContinuation(c byte) bool {
	switch lower(c) {
	case 'c', 'd', 't':
		return true
	}
	return false
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
