package rope

// Summary holds aggregated metrics for a text span.
// It is the monoid combined up the rope tree: bytes, unicode scalar
// values, and newline count.
type Summary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the unicode scalar value count.
	Chars int

	// Lines is the number of '\n' characters.
	Lines int
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// IsZero returns true if this is the identity summary.
func (s Summary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) Summary {
	var sum Summary
	sum.Bytes = len(s)
	for _, r := range s {
		sum.Chars++
		if r == '\n' {
			sum.Lines++
		}
	}
	return sum
}
