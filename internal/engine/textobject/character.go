package textobject

import "unicode"

// Kind classifies a unicode scalar value for word motions.
type Kind uint8

const (
	// KindWord is an alphanumeric scalar (and, in bigword mode,
	// everything that is not whitespace).
	KindWord Kind = iota

	// KindWhitespace is a unicode whitespace scalar.
	KindWhitespace

	// KindPunctuation is any other scalar in regular word mode.
	KindPunctuation

	// KindUnknown means no scalar is present at the queried offset.
	// It is a boundary marker, not a fourth character class.
	KindUnknown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindWhitespace:
		return "whitespace"
	case KindPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Classify maps a scalar to its kind. In bigword mode punctuation folds
// into the word class, leaving only the word/whitespace dichotomy.
func Classify(r rune, bigword bool) Kind {
	switch {
	case unicode.IsLetter(r) || unicode.IsNumber(r):
		return KindWord
	case unicode.IsSpace(r):
		return KindWhitespace
	case bigword:
		return KindWord
	default:
		return KindPunctuation
	}
}

// Token pair tables. Built once; never rebuilt per call.
var (
	openingTokens = map[rune]rune{
		'(': ')',
		'{': '}',
		'[': ']',
		'<': '>',
	}

	closingTokens = map[rune]rune{
		')': '(',
		'}': '{',
		']': '[',
		'>': '<',
	}
)

// IsOpeningToken returns true for (, {, [ and <.
func IsOpeningToken(r rune) bool {
	_, ok := openingTokens[r]
	return ok
}

// IsClosingToken returns true for ), }, ] and >.
func IsClosingToken(r rune) bool {
	_, ok := closingTokens[r]
	return ok
}

// matchingToken returns the partner of a bracket token.
func matchingToken(r rune) (rune, bool) {
	if m, ok := openingTokens[r]; ok {
		return m, true
	}
	if m, ok := closingTokens[r]; ok {
		return m, true
	}
	return 0, false
}
