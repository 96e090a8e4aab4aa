package buffer

import (
	"io"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

// RopeBuffer implements Buffer on top of a rope, so inserts and removes in
// large files stay cheap.
type RopeBuffer struct {
	rope *rope.Node
}

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return &RopeBuffer{rope.New(contents)}
}

// trimDelim cuts the line delimiter ("\n" or "\r\n") off the end of data.
func trimDelim(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
		if len(data) > 0 && data[len(data)-1] == '\r' {
			data = data[:len(data)-1]
		}
	}
	return data
}

// lineStart returns the byte offset of the first byte of the given line.
// A line beyond the last returns the buffer length.
func (b *RopeBuffer) lineStart(line int) int {
	if line <= 0 {
		return 0
	}
	pos := b.rope.Len()
	b.rope.IndexAllFunc(0, b.rope.Len(), []byte{'\n'}, func(idx int) bool {
		line--
		if line == 0 {
			pos = idx + 1
			return true
		}
		return false
	})
	return pos
}

func (b *RopeBuffer) Line(line int) []byte {
	start := b.lineStart(line)
	end := b.rope.Len()
	b.rope.IndexAllFunc(start, b.rope.Len(), []byte{'\n'}, func(idx int) bool {
		end = idx + 1
		return true
	})
	return b.rope.Slice(start, end)
}

func (b *RopeBuffer) Bytes() []byte {
	return b.rope.Value()
}

func (b *RopeBuffer) Insert(line, col int, value []byte) {
	b.rope.Insert(b.LineColToPos(line, col), value)
}

func (b *RopeBuffer) Remove(startLine, startCol, endLine, endCol int) {
	start := b.LineColToPos(startLine, startCol)
	end := b.LineColToPos(endLine, endCol)
	if end > b.rope.Len() {
		end = b.rope.Len()
	}
	if start >= end {
		return
	}
	b.rope.Remove(start, end)
}

func (b *RopeBuffer) Len() int {
	return b.rope.Len()
}

func (b *RopeBuffer) Lines() int {
	return b.rope.Count(0, b.rope.Len(), []byte{'\n'}) + 1
}

func (b *RopeBuffer) RunesInLine(line int) int {
	return utf8.RuneCount(trimDelim(b.Line(line)))
}

func (b *RopeBuffer) ClampLineCol(line, col int) (int, int) {
	if line < 0 {
		line = 0
	} else if lines := b.Lines() - 1; line > lines {
		line = lines
	}

	if col < 0 {
		col = 0
	} else if runes := b.RunesInLine(line); col > runes {
		col = runes
	}

	return line, col
}

func (b *RopeBuffer) LineColToPos(line, col int) int {
	if line < 0 {
		line = 0
	}
	pos := b.lineStart(line)
	data := trimDelim(b.Line(line))
	for col > 0 && len(data) > 0 {
		_, size := utf8.DecodeRune(data)
		data = data[size:]
		pos += size
		col--
	}
	return pos
}

func (b *RopeBuffer) PosToLineCol(pos int) (int, int) {
	if pos <= 0 {
		return 0, 0
	}
	if length := b.rope.Len(); pos > length {
		pos = length
	}
	line := b.rope.Count(0, pos, []byte{'\n'})
	col := utf8.RuneCount(b.rope.Slice(b.lineStart(line), pos))
	return line, col
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return b.rope.WriteTo(w)
}
