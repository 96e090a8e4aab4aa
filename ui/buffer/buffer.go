package buffer

import (
	"io"
)

// A Buffer is a wrapper around a text data structure suitable for editors.
// All API positions are line and column indexes starting at zero; columns
// count runes, not bytes. Ranges are half-open: the end position is not
// included. A column equal to the number of runes in a line addresses the
// line delimiter.
//
// Positions out of range are clamped, never a panic. Use ClampLineCol when
// a caller needs the clamped values back.
type Buffer interface {
	// Line returns the data of the given line including its delimiter, if
	// any. The returned slice may not be a copy: do not write to it.
	Line(line int) []byte

	// Bytes returns all bytes of the buffer. Likely copies the entire
	// contents; use sparingly.
	Bytes() []byte

	// Insert copies value into the buffer at line, col.
	Insert(line, col int, value []byte)

	// Remove deletes the range from startLine, startCol up to but not
	// including endLine, endCol.
	Remove(startLine, startCol, endLine, endCol int)

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines. An empty buffer still has one
	// line.
	Lines() int

	// RunesInLine returns the number of runes in the line, excluding the
	// line delimiter.
	RunesInLine(line int) int

	// ClampLineCol clamps line to the available lines, then col to the
	// runes of that line.
	ClampLineCol(line, col int) (int, int)

	// LineColToPos returns the byte offset of the rune at line, col. A col
	// past the end of the line gives the offset of the line delimiter.
	LineColToPos(line, col int) int

	// PosToLineCol converts a byte offset into a line and column. The
	// offset is clamped to the buffer.
	PosToLineCol(pos int) (int, int)

	WriteTo(w io.Writer) (int64, error)
}
