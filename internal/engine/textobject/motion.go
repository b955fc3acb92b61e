package textobject

// Motions compute destination positions without mutating content.
// Every scan re-derives offsets from the current content; nothing is
// cached across edits. All scans are bounded by the buffer length and
// carry O(1) auxiliary state.

// WordEnd finds the end of the current or next word, repeated count
// times. The scan starts one past the cursor so a one-scalar word does
// not return its own start. A leading whitespace run is skipped; the
// motion lands on the last scalar of the first classification run, or
// on the last valid offset if content ends first.
func (c *core) WordEnd(cur Cursor, count int, bigword bool) Position {
	offset := c.offsetFor(cur)
	for i := 0; i < count; i++ {
		offset = c.wordEndFrom(offset, bigword)
	}
	return c.positionAt(offset)
}

func (c *core) wordEndFrom(offset int, bigword bool) int {
	end := c.skipWhitespaceForward(offset+1, bigword)

	kind := c.kindAt(end, bigword)
	if kind == KindUnknown {
		return end
	}
	for i := end + 1; i < c.content.Len(); i++ {
		if c.kindAt(i, bigword) != kind {
			break
		}
		end = i
	}
	return end
}

// skipWhitespaceForward advances past a leading whitespace run starting
// at start, landing on the first non-whitespace scalar (or the last
// valid offset if the run reaches the end). A start already on a
// non-whitespace scalar is returned unchanged.
func (c *core) skipWhitespaceForward(start int, bigword bool) int {
	end := start
	if c.kindAt(start, bigword) != KindWhitespace {
		return end
	}
	for i := start + 1; ; i++ {
		kind := c.kindAt(i, bigword)
		if kind == KindUnknown {
			break
		}
		end = i
		if kind != KindWhitespace {
			break
		}
	}
	return end
}

// NextWord finds the start of the next word, repeated count times.
// Skipping whitespace, a second line terminator before any
// non-whitespace scalar halts the motion at that terminator's offset:
// an empty line is a landing point, not something to skip over.
func (c *core) NextWord(cur Cursor, count int, bigword bool) Position {
	offset := c.offsetFor(cur)
	maxOffset := c.content.Len()

	for i := 0; i < count; i++ {
		if offset > maxOffset {
			break
		}

		foundNewline := false

		// Move to the end of the current classification run, if the
		// cursor sits on a non-whitespace scalar.
		if kind := c.kindAt(offset, bigword); kind != KindWhitespace {
			for offset < maxOffset && c.kindAt(offset, bigword) == kind {
				offset++
			}
		}

		// Skip the whitespace run to the next word.
		for offset < maxOffset && c.isWhitespaceAt(offset) {
			if r, _ := c.charAt(offset); r == '\n' {
				if foundNewline {
					return c.positionAt(offset)
				}
				foundNewline = true
			}
			offset++
		}
	}

	return c.positionAt(offset)
}

// PrevWord finds the start of the previous word, repeated count times.
// The backward whitespace skip halts just after a second line
// terminator, mirroring NextWord's empty-line rule.
func (c *core) PrevWord(cur Cursor, count int, bigword bool) Position {
	offset := c.offsetFor(cur)

	for i := 0; i < count; i++ {
		foundNewline := false

		for offset > 0 && c.isWhitespaceAt(offset-1) {
			if r, _ := c.charAt(offset - 1); r == '\n' {
				if foundNewline {
					return c.positionAt(offset)
				}
				foundNewline = true
			}
			offset--
		}

		if offset == 0 {
			break
		}

		kind := c.kindAt(offset-1, bigword)
		for offset > 0 && c.kindAt(offset-1, bigword) == kind {
			offset--
		}
	}

	return c.positionAt(offset)
}

// CharBeforeWhitespace scans backward from the cursor for the first
// whitespace scalar, then lands on the first non-whitespace scalar
// before that run (or offset 0 if the run reaches the start).
func (c *core) CharBeforeWhitespace(cur Cursor) Position {
	offset := c.offsetFor(cur)
	index := offset - 1
	if index < 0 {
		index = 0
	}

	found := false
	for i := 0; i < offset-1; i++ {
		r, ok := c.charAt(index)
		if ok {
			switch {
			case !found && Classify(r, false) == KindWhitespace:
				found = true
			case found && Classify(r, false) != KindWhitespace:
				return c.positionAt(index)
			}
		}
		if index == 0 {
			break
		}
		index--
	}

	return c.positionAt(index)
}

// BlankLineAbove scans upward for the first line consisting of exactly
// the terminator sequence, stopping at row 0 regardless.
func (c *core) BlankLineAbove(cur Cursor) int {
	row := cur.Row() - 1
	if row < 0 {
		row = 0
	}

	for {
		line, ok := c.content.Line(row)
		if !ok {
			break
		}
		if line == c.lineBreak.Sequence() {
			break
		}
		if row == 0 {
			break
		}
		row--
	}

	return row
}

// BlankLineBelow scans downward for the first line consisting of
// exactly the terminator sequence, clamped to the last valid row.
func (c *core) BlankLineBelow(cur Cursor) int {
	row := cur.Row() + 1

	for {
		line, ok := c.content.Line(row)
		if !ok {
			break
		}
		if line == c.lineBreak.Sequence() {
			break
		}
		row++
	}

	if last := c.content.LineCount() - 1; row > last {
		row = last
	}
	return row
}

// MatchingToken finds the partner of the bracket token at the cursor,
// counting nesting depth. Starting on a non-bracket scalar scans the
// remainder of the cursor's line for the first bracket and matches
// that; if the line has none, or no partner balances the depth, the
// motion is a no-op returning the input position.
func (c *core) MatchingToken(cur Cursor) Position {
	origin := Position{Col: cur.Col(), Row: cur.Row()}

	offset := c.offsetFor(cur)
	token, ok := c.charAt(offset)
	if !ok {
		return origin
	}

	if _, isToken := matchingToken(token); !isToken {
		lineEnd := c.content.LineToChar(cur.Row()) + c.LineLen(cur.Row())
		found := false
		for i := offset + 1; i < lineEnd; i++ {
			r, present := c.charAt(i)
			if !present {
				break
			}
			if _, isToken := matchingToken(r); isToken {
				offset, token, found = i, r, true
				break
			}
		}
		if !found {
			return origin
		}
	}

	match, _ := matchingToken(token)

	if IsOpeningToken(token) {
		depth := 1
		for i := offset + 1; i < c.content.Len(); i++ {
			switch r, _ := c.charAt(i); r {
			case token:
				depth++
			case match:
				depth--
				if depth == 0 {
					return c.positionAt(i)
				}
			}
		}
		return origin
	}

	depth := 1
	for i := offset - 1; i >= 0; i-- {
		switch r, _ := c.charAt(i); r {
		case token:
			depth++
		case match:
			depth--
			if depth == 0 {
				return c.positionAt(i)
			}
		}
	}
	return origin
}
