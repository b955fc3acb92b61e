package syntax

import "sort"

// event records the nesting depth in effect from a byte offset onward.
type event struct {
	offset int
	depth  int
}

// Tree is an immutable bracket-scope index over one snapshot of
// content. It is rebuilt after edits; queries on a stale tree return
// stale depths, never panic.
type Tree struct {
	events []event
}

// Parse scans content and records every depth change caused by the
// bracket pairs (), {} and []. Angle brackets are ignored since they
// double as comparison operators. Brackets inside single- or
// double-quoted string literals do not affect depth; a backslash
// escapes the next byte inside a literal.
func Parse(content string) *Tree {
	t := &Tree{}
	depth := 0

	var quote byte
	escaped := false

	for i := 0; i < len(content); i++ {
		b := content[i]

		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == quote || b == '\n':
				quote = 0
			}
			continue
		}

		switch b {
		case '"', '\'':
			quote = b
		case '(', '{', '[':
			depth++
			t.events = append(t.events, event{offset: i + 1, depth: depth})
		case ')', '}', ']':
			if depth > 0 {
				depth--
			}
			t.events = append(t.events, event{offset: i, depth: depth})
		}
	}

	return t
}

// IndentationLevel returns the nesting depth at a byte offset. A nil
// tree reports depth 0 everywhere, so callers can pass an unparsed
// buffer straight through.
func (t *Tree) IndentationLevel(byteOffset int) int {
	if t == nil || len(t.events) == 0 {
		return 0
	}
	if byteOffset < 0 {
		byteOffset = 0
	}

	// First event past the offset; the one before it governs.
	i := sort.Search(len(t.events), func(i int) bool {
		return t.events[i].offset > byteOffset
	})
	if i == 0 {
		return 0
	}
	return t.events[i-1].depth
}

// MaxDepth returns the deepest nesting level seen during the parse.
func (t *Tree) MaxDepth() int {
	if t == nil {
		return 0
	}
	max := 0
	for _, e := range t.events {
		if e.depth > max {
			max = e.depth
		}
	}
	return max
}
