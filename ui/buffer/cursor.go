package buffer

import "math"

// A Cursor is a line and column position within a Buffer. The movement
// functions are value receivers that return the moved cursor, so callers
// can chain moves or discard them freely. The cursor needs the buffer to
// know where lines end.
type Cursor struct {
	buffer Buffer
	line   int
	col    int
}

func NewCursor(in Buffer) Cursor {
	return Cursor{buffer: in}
}

func (c Cursor) Left() Cursor {
	if c.col == 0 && c.line != 0 { // At the beginning of a line...
		// Go to the end of the line above
		c.line--
		c.col = c.buffer.RunesInLine(c.line)
	} else if c.col > 0 {
		c.col--
	}
	return c
}

func (c Cursor) Right() Cursor {
	// At the end of the line, and not the last line...
	if c.col >= c.buffer.RunesInLine(c.line) && c.line < c.buffer.Lines()-1 {
		c.line, c.col = c.buffer.ClampLineCol(c.line+1, 0)
	} else {
		c.line, c.col = c.buffer.ClampLineCol(c.line, c.col+1)
	}
	return c
}

func (c Cursor) Up() Cursor {
	if c.line == 0 { // On the first line: go to the very beginning
		c.line, c.col = 0, 0
	} else {
		c.line, c.col = c.buffer.ClampLineCol(c.line-1, c.col)
	}
	return c
}

func (c Cursor) Down() Cursor {
	if c.line == c.buffer.Lines()-1 { // On the last line: go to its end
		c.line, c.col = c.buffer.ClampLineCol(c.line, math.MaxInt32)
	} else {
		c.line, c.col = c.buffer.ClampLineCol(c.line+1, c.col)
	}
	return c
}

func (c Cursor) LineCol() (line, col int) {
	return c.line, c.col
}

// SetLineCol returns the cursor moved to line, col, clamped within the
// buffer.
func (c Cursor) SetLineCol(line, col int) Cursor {
	c.line, c.col = c.buffer.ClampLineCol(line, col)
	return c
}
