package textobject

import "strings"

// LineBreak is the terminator convention a buffer was loaded with.
// It is detected once at construction and never changes; every
// terminator the buffer inserts itself uses this convention.
type LineBreak uint8

const (
	// LineBreakLF is the Unix convention: "\n".
	LineBreakLF LineBreak = iota

	// LineBreakCRLF is the Windows convention: "\r\n".
	LineBreakCRLF
)

// Sequence returns the literal terminator characters.
func (lb LineBreak) Sequence() string {
	if lb == LineBreakCRLF {
		return "\r\n"
	}
	return "\n"
}

// Len returns the terminator length in scalars (1 or 2).
func (lb LineBreak) Len() int {
	if lb == LineBreakCRLF {
		return 2
	}
	return 1
}

// String returns the escaped representation.
func (lb LineBreak) String() string {
	if lb == LineBreakCRLF {
		return "\\r\\n"
	}
	return "\\n"
}

// DetectLineBreak inspects the first line of loaded content.
// A "\r\n" on line 0 selects CRLF; anything else selects LF.
func DetectLineBreak(firstLine string) LineBreak {
	if strings.Contains(firstLine, "\r\n") {
		return LineBreakCRLF
	}
	return LineBreakLF
}
