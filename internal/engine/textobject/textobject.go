package textobject

import (
	"strings"

	"github.com/mbarela/textforge/internal/engine/rope"
)

// Cursor is the read-only view the text object has of the caller's
// cursor. The object never moves it; motions return fresh positions
// for the owner to apply.
type Cursor interface {
	Row() int
	Col() int
}

// IndentQuery supplies a scope-aware indentation level for a byte
// offset, typically backed by a parsed syntax tree. A nil query means
// indentation level 0 everywhere.
type IndentQuery interface {
	IndentationLevel(byteOffset int) int
}

// Position is a column/row destination returned by motions.
// Both coordinates are 0-indexed; Col counts scalars within the row.
type Position struct {
	Col int
	Row int
}

// core holds the content and line-break policy shared by the Readonly
// and Write states. Its exported methods are promoted onto both.
type core struct {
	content   rope.Rope
	lineBreak LineBreak
}

// Readonly is a text object that supports only non-mutating queries
// and motions. WithWrite upgrades it; there is no downgrade path.
type Readonly struct {
	core
}

// Write is a text object that additionally supports edits. Mutating
// methods require exclusive access; the object has no internal locking.
type Write struct {
	core
}

// From parses content into a readonly text object, detecting the
// line-break convention from the first line.
func From(content string) *Readonly {
	r := rope.FromString(content)
	firstLine, _ := r.Line(0)
	return &Readonly{core{
		content:   r,
		lineBreak: DetectLineBreak(firstLine),
	}}
}

// FromLineBreak parses content with an explicit terminator convention,
// bypassing detection. Callers are expected to have normalized content
// to that convention already.
func FromLineBreak(content string, lb LineBreak) *Readonly {
	return &Readonly{core{
		content:   rope.FromString(content),
		lineBreak: lb,
	}}
}

// WithWrite moves the content into a writable text object. The upgrade
// is one-way: the receiver is detached (left empty) so the content has
// exactly one owner afterwards.
func (r *Readonly) WithWrite() *Write {
	w := &Write{core: r.core}
	r.core = core{content: rope.New(), lineBreak: r.lineBreak}
	return w
}

// LineBreak returns the detected terminator convention.
func (c *core) LineBreak() LineBreak {
	return c.lineBreak
}

// LineCount returns the number of lines. A buffer always has at least
// one line, even when empty.
func (c *core) LineCount() int {
	return c.content.LineCount()
}

// Len returns the total scalar count.
func (c *core) Len() int {
	return c.content.Len()
}

// LineLen returns the scalar count of a line excluding its terminator.
func (c *core) LineLen(row int) int {
	line, ok := c.content.Line(row)
	if !ok {
		return 0
	}
	n := 0
	for range line {
		n++
	}
	if strings.HasSuffix(line, "\n") {
		// Mixed terminators in loaded content are preserved, so check
		// the line itself rather than trusting the detected policy.
		if strings.HasSuffix(line, "\r\n") {
			return n - 2
		}
		return n - 1
	}
	return n
}

// LineLenWithTerminator returns the scalar count of a line including
// its terminator, if present.
func (c *core) LineLenWithTerminator(row int) int {
	line, ok := c.content.Line(row)
	if !ok {
		return 0
	}
	n := 0
	for range line {
		n++
	}
	return n
}

// LineText returns the text of a line including its terminator, and
// false if the row is out of range.
func (c *core) LineText(row int) (string, bool) {
	return c.content.Line(row)
}

// Render serializes the full content: a byte-identical round trip of
// whatever was loaded plus whatever edits inserted.
func (c *core) Render() string {
	return c.content.String()
}

// offsetFor converts a cursor to the absolute scalar offset it
// addresses. Recomputed from current content on every call; offsets
// are never cached across edits.
func (c *core) offsetFor(cur Cursor) int {
	return c.content.LineToChar(cur.Row()) + cur.Col()
}

// positionAt converts an absolute scalar offset back to a position,
// clamped to the content bounds.
func (c *core) positionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > c.content.Len() {
		offset = c.content.Len()
	}
	row := c.content.CharToLine(offset)
	return Position{
		Col: offset - c.content.LineToChar(row),
		Row: row,
	}
}

// charAt returns the scalar at an offset, or false past the end.
func (c *core) charAt(offset int) (rune, bool) {
	return c.content.CharAt(offset)
}

// kindAt classifies the scalar at an offset; absent scalars are
// KindUnknown.
func (c *core) kindAt(offset int, bigword bool) Kind {
	r, ok := c.content.CharAt(offset)
	if !ok {
		return KindUnknown
	}
	return Classify(r, bigword)
}

// isWhitespaceAt reports whether a scalar exists at the offset and is
// whitespace.
func (c *core) isWhitespaceAt(offset int) bool {
	return c.kindAt(offset, false) == KindWhitespace
}

// isTerminatorChar reports whether the scalar is part of this buffer's
// terminator sequence.
func (c *core) isTerminatorChar(r rune) bool {
	return strings.ContainsRune(c.lineBreak.Sequence(), r)
}
