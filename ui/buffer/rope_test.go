package buffer

import "testing"

func TestRopePosToLineCol(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("line0\nline1\n\nline3\n"))
	//line0
	//line1
	//
	//line3
	//

	line, col := buf.PosToLineCol(0)
	if line != 0 || col != 0 {
		t.Errorf("Expected 0,0 got %v,%v", line, col)
	}

	line, col = buf.PosToLineCol(11) // The delimiter ending line1
	if line != 1 || col != 5 {
		t.Errorf("Expected 1,5 got %v,%v", line, col)
	}

	line, col = buf.PosToLineCol(buf.Len()) // Past the trailing delimiter
	if line != 4 || col != 0 {
		t.Errorf("Expected 4,0 got %v,%v", line, col)
	}
}

func TestRopeLineColToPos(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("abc\ndef\n"))

	if pos := buf.LineColToPos(0, 0); pos != 0 {
		t.Errorf("Expected pos 0, got %v", pos)
	}
	if pos := buf.LineColToPos(1, 0); pos != 4 {
		t.Errorf("Expected pos 4, got %v", pos)
	}
	// A column past the end of the line addresses the delimiter
	if pos := buf.LineColToPos(0, 100); pos != 3 {
		t.Errorf("Expected pos 3, got %v", pos)
	}
}

func TestRopeInserting(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("some"))
	buf.Insert(0, 4, []byte(" text\n"))
	buf.Insert(0, 0, []byte("with\n  "))
	//with
	//  some text
	//

	buf.Remove(0, 4, 1, 7) // Delete the delim and "  some " of line 1

	if str := string(buf.Bytes()); str != "withtext\n" {
		t.Errorf("string does not match \"withtext\\n\", got %#v", str)
	}
}

func TestRopeRemoveDelim(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("ab\ncd\n"))

	// Removing from the end of line 0 to the start of line 1 joins them
	buf.Remove(0, 2, 1, 0)
	if str := string(buf.Bytes()); str != "abcd\n" {
		t.Errorf("Expected \"abcd\\n\", got %#v", str)
	}

	if buf.Lines() != 2 {
		t.Errorf("Expected 2 lines, got %v", buf.Lines())
	}
}

func TestRopeBounds(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("this\nis (は)\n some\ntext\n"))

	if buf.Lines() != 5 {
		t.Errorf("Expected buf.Lines() == 5, got %v", buf.Lines())
	}

	if n := buf.RunesInLine(1); n != 6 { // "is (は)" is six runes
		t.Errorf("Expected 6 runes in line 1, found %v", n)
	}

	if n := buf.RunesInLine(4); n != 0 {
		t.Errorf("Expected 0 runes in line 4, found %v", n)
	}

	line, col := buf.ClampLineCol(15, 5) // Past the last line
	if line != 4 || col != 0 {
		t.Errorf("Expected clamp to 4,0 got %v,%v", line, col)
	}

	line, col = buf.ClampLineCol(0, -1)
	if line != 0 || col != 0 {
		t.Errorf("Expected clamp to 0,0 got %v,%v", line, col)
	}

	if l := string(buf.Line(2)); l != " some\n" {
		t.Errorf("Expected line 2 to equal \" some\\n\", got %#v", l)
	}

	if l := string(buf.Line(4)); l != "" {
		t.Errorf("Got %#v", l)
	}
}

func TestRopeCRLF(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("ab\r\ncd\r\n"))

	if n := buf.RunesInLine(0); n != 2 {
		t.Errorf("Expected 2 runes in line 0, got %v", n)
	}

	// Col past the line end addresses the '\r' of the delimiter
	if pos := buf.LineColToPos(0, 5); pos != 2 {
		t.Errorf("Expected pos 2, got %v", pos)
	}

	// Joining two CRLF lines removes both delimiter bytes
	buf.Remove(0, 2, 1, 0)
	if str := string(buf.Bytes()); str != "abcd\r\n" {
		t.Errorf("Expected \"abcd\\r\\n\", got %#v", str)
	}
}

func TestCursorMovement(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("ab\ncdef\n"))
	cursor := NewCursor(buf)

	cursor = cursor.Right().Right() // To the end of "ab"
	if line, col := cursor.LineCol(); line != 0 || col != 2 {
		t.Errorf("Expected 0,2 got %v,%v", line, col)
	}

	cursor = cursor.Right() // Wraps to the start of "cdef"
	if line, col := cursor.LineCol(); line != 1 || col != 0 {
		t.Errorf("Expected 1,0 got %v,%v", line, col)
	}

	cursor = cursor.Left() // And back
	if line, col := cursor.LineCol(); line != 0 || col != 2 {
		t.Errorf("Expected 0,2 got %v,%v", line, col)
	}

	cursor = cursor.SetLineCol(1, 100) // Clamped to the end of "cdef"
	if line, col := cursor.LineCol(); line != 1 || col != 4 {
		t.Errorf("Expected 1,4 got %v,%v", line, col)
	}

	cursor = cursor.Up()
	if line, col := cursor.LineCol(); line != 0 || col != 2 {
		t.Errorf("Expected 0,2 got %v,%v", line, col)
	}
}
