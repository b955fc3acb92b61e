package textobject

import "strings"

// Edit primitives. All operate at the absolute offset derived from the
// cursor's row and column against current content. Out-of-range
// removals are absorbed as no-ops; the buffer never ends up in a
// partially-mutated state.

// InsertChar inserts one scalar at the cursor's offset.
func (w *Write) InsertChar(r rune, cur Cursor) {
	offset := w.offsetFor(cur)
	w.content = w.content.Insert(offset, string(r))
}

// InsertLineBreak inserts the buffer's terminator sequence at the
// cursor's offset.
func (w *Write) InsertLineBreak(cur Cursor) {
	offset := w.offsetFor(cur)
	w.content = w.content.Insert(offset, w.lineBreak.Sequence())
}

// ErasePrevious removes the scalar immediately before the cursor's
// offset. A cursor at offset 0 is a no-op.
func (w *Write) ErasePrevious(cur Cursor) {
	offset := w.offsetFor(cur)
	if offset == 0 {
		return
	}
	w.content = w.content.Delete(offset-1, offset)
}

// EraseToLineStart removes everything from column 0 up to the cursor's
// offset on the cursor's row, returning the number of scalars removed
// so the caller can reposition.
func (w *Write) EraseToLineStart(cur Cursor) int {
	if cur.Col() == 0 {
		return 0
	}
	lineStart := w.content.LineToChar(cur.Row())
	offset := lineStart + cur.Col()
	if offset > w.content.Len() {
		return 0
	}
	w.content = w.content.Delete(lineStart, offset)
	return offset - lineStart
}

// EraseCurrent removes the scalar at the cursor's offset.
func (w *Write) EraseCurrent(cur Cursor) {
	offset := w.offsetFor(cur)
	w.content = w.content.Delete(offset, offset+1)
}

// EraseToLineEnd removes from the cursor's offset up to, but not
// including, the line's terminator.
func (w *Write) EraseToLineEnd(cur Cursor) {
	offset := w.offsetFor(cur)
	end := w.content.LineToChar(cur.Row()) + w.LineLen(cur.Row())
	if offset >= end {
		return
	}
	w.content = w.content.Delete(offset, end)
}

// DeleteLine removes the entire line span including its terminator.
// An out-of-range row is a no-op.
func (w *Write) DeleteLine(row int) {
	start := w.content.LineToChar(row)
	end := w.content.LineToChar(row + 1)
	if start >= end {
		return
	}
	w.content = w.content.Delete(start, end)
}

// DeleteWordForward removes from the cursor's offset up to the first
// scalar whose class differs from the scalar under the cursor, or up
// to a line terminator, whichever comes first.
func (w *Write) DeleteWordForward(cur Cursor) {
	offset := w.offsetFor(cur)
	first, ok := w.charAt(offset)
	if !ok {
		return
	}

	initialKind := Classify(first, false)
	stop := offset
	for stop < w.content.Len() {
		r, _ := w.charAt(stop)
		if w.isTerminatorChar(r) {
			break
		}
		if Classify(r, false) != initialKind {
			break
		}
		stop++
	}

	w.content = w.content.Delete(offset, stop)
}

// DeleteWordBackward mirrors DeleteWordForward, scanning backward from
// the scalar before the cursor's offset. It returns the number of
// scalars removed so the caller can reposition its cursor.
func (w *Write) DeleteWordBackward(cur Cursor) int {
	offset := w.offsetFor(cur)
	if offset == 0 || offset > w.content.Len() {
		return 0
	}

	first, ok := w.charAt(offset - 1)
	if !ok {
		return 0
	}

	initialKind := Classify(first, false)
	stop := offset - 1
	for stop >= 0 {
		r, _ := w.charAt(stop)
		if w.isTerminatorChar(r) {
			break
		}
		if Classify(r, false) != initialKind {
			break
		}
		stop--
	}

	removed := offset - (stop + 1)
	if removed <= 0 {
		return 0
	}
	w.content = w.content.Delete(stop+1, offset)
	return removed
}

// InsertLineAbove inserts a line of scope-aware indentation followed by
// the terminator immediately before the cursor's line. A nil indent
// query yields indentation level 0.
func (w *Write) InsertLineAbove(cur Cursor, indent IndentQuery) {
	lineStart := w.content.LineToChar(cur.Row())
	w.content = w.content.Insert(lineStart, w.indentedLine(cur, indent))
}

// InsertLineBelow inserts a line of scope-aware indentation followed by
// the terminator immediately after the cursor's line.
func (w *Write) InsertLineBelow(cur Cursor, indent IndentQuery) {
	nextLine := w.content.LineToChar(cur.Row() + 1)
	w.content = w.content.Insert(nextLine, w.indentedLine(cur, indent))
}

// indentedLine builds indentation + terminator for the cursor's line.
// The level is queried at the cursor's byte position, so the scope the
// cursor sits in decides the indentation, not the line as a whole.
func (w *Write) indentedLine(cur Cursor, indent IndentQuery) string {
	level := 0
	if indent != nil {
		level = indent.IndentationLevel(w.content.LineToByte(cur.Row()) + cur.Col())
	}
	if level < 0 {
		level = 0
	}
	return strings.Repeat("  ", level) + w.lineBreak.Sequence()
}
