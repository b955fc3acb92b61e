// Package cursor provides the row/column cursor consumed by the text
// engine. The engine only ever reads a cursor; motion results come back
// as positions for the owner to apply.
package cursor

import "fmt"

// Cursor is an immutable row/column position.
// Both coordinates are 0-indexed; Col counts unicode scalar values
// within the row, never across a line boundary.
type Cursor struct {
	col int
	row int
}

// New creates a cursor at the origin.
func New() Cursor {
	return Cursor{}
}

// At creates a cursor at the given column and row.
func At(col, row int) Cursor {
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return Cursor{col: col, row: row}
}

// Col returns the cursor's column.
func (c Cursor) Col() int {
	return c.col
}

// Row returns the cursor's row.
func (c Cursor) Row() int {
	return c.row
}

// MoveRight returns a cursor advanced n columns.
func (c Cursor) MoveRight(n int) Cursor {
	return At(c.col+n, c.row)
}

// MoveLeft returns a cursor moved back n columns, stopping at column 0.
func (c Cursor) MoveLeft(n int) Cursor {
	return At(c.col-n, c.row)
}

// MoveUp returns a cursor moved up n rows, stopping at row 0.
func (c Cursor) MoveUp(n int) Cursor {
	return At(c.col, c.row-n)
}

// MoveDown returns a cursor moved down n rows.
func (c Cursor) MoveDown(n int) Cursor {
	return At(c.col, c.row+n)
}

// WithCol returns a cursor at the given column on the same row.
func (c Cursor) WithCol(col int) Cursor {
	return At(col, c.row)
}

// WithRow returns a cursor on the given row at the same column.
func (c Cursor) WithRow(row int) Cursor {
	return At(c.col, row)
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.row, c.col)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.col == other.col && c.row == other.row
}
