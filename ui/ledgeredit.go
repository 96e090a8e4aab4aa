package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"cashed/syntax"
	"cashed/ui/buffer"
)

// LedgerEdit is a line-based editing field for ledger files with syntax
// highlighting and line numbers. Tabs are soft: the Tab key indents with
// spaces, which is also what the ledger block parser expects.
type LedgerEdit struct {
	Buffer      buffer.Buffer
	Highlighter *buffer.Highlighter
	LineNumbers bool
	Dirty       bool // Whether the buffer has been edited since loading or saving
	TabSize     int
	IsCRLF      bool   // Whether the file's line endings are CRLF or LF
	FilePath    string // Empty if the file has not been saved yet

	screen           tcell.Screen // Kept for cursor positioning
	colorscheme      buffer.Colorscheme
	cursor           buffer.Cursor
	scrollx, scrolly int

	baseComponent
}

func NewLedgerEdit(screen tcell.Screen, filePath string, contents []byte, theme *Theme, colorscheme buffer.Colorscheme) *LedgerEdit {
	e := &LedgerEdit{
		LineNumbers: true,
		TabSize:     4,
		FilePath:    filePath,

		screen:        screen,
		colorscheme:   colorscheme,
		baseComponent: baseComponent{theme: theme},
	}
	e.SetContents(contents)
	return e
}

// SetContents replaces the buffer with the given bytes. Line endings are
// detected from the first delimiter found.
func (e *LedgerEdit) SetContents(contents []byte) {
	e.IsCRLF = false
loop:
	for i := 0; i < len(contents); i++ {
		switch contents[i] {
		case '\n':
			break loop
		case '\r':
			e.IsCRLF = true
			break loop
		}
	}

	e.Buffer = buffer.NewRopeBuffer(contents)
	e.Highlighter = buffer.NewHighlighter(e.Buffer, e.colorscheme)
	e.cursor = buffer.NewCursor(e.Buffer)
	e.Dirty = false
}

// LineDelimiter returns "\r\n" for a CRLF buffer, or "\n" for an LF one.
func (e *LedgerEdit) LineDelimiter() string {
	if e.IsCRLF {
		return "\r\n"
	}
	return "\n"
}

// CursorLineCol returns the cursor position, zero based.
func (e *LedgerEdit) CursorLineCol() (line, col int) {
	return e.cursor.LineCol()
}

// CurrentLine returns the text of the cursor's line without its
// delimiter.
func (e *LedgerEdit) CurrentLine() string {
	line, _ := e.cursor.LineCol()
	data := e.Buffer.Line(line)
	return strings.TrimRight(string(data), "\r\n")
}

// GoToLine moves the cursor to the given 1-based line, clamped to the
// buffer.
func (e *LedgerEdit) GoToLine(line int) {
	e.setCursor(e.cursor.SetLineCol(line-1, 0))
	e.ScrollToCursor()
}

// Insert writes contents at the cursor position, advancing it. Line
// delimiters of any flavor become the buffer's own; tabs become spaces.
func (e *LedgerEdit) Insert(contents string) {
	e.Dirty = true

	line, col := e.cursor.LineCol()
	startingLine := line
	var lineInserted bool

	runes := []rune(contents)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\r':
			// Only meaningful as part of a CRLF pair
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
		case '\n':
			e.Buffer.Insert(line, col, []byte(e.LineDelimiter()))
			line, col = line+1, 0
			lineInserted = true
		case '\t':
			spaces := strings.Repeat(" ", e.TabSize)
			e.Buffer.Insert(line, col, []byte(spaces))
			col += e.TabSize
		default:
			e.Buffer.Insert(line, col, []byte(string(r)))
			col++
		}
	}

	if lineInserted {
		e.Highlighter.InvalidateLines(startingLine, e.Buffer.Lines()-1)
	} else {
		e.Highlighter.InvalidateLines(startingLine, startingLine)
	}

	e.setCursor(e.cursor.SetLineCol(line, col))
	e.ScrollToCursor()
}

// Delete removes one rune: with forwards false the rune before the cursor
// (backspace), with forwards true the rune at the cursor. Deleting across
// a line boundary joins the lines.
func (e *LedgerEdit) Delete(forwards bool) {
	line, col := e.cursor.LineCol()
	var joinedLine bool

	if forwards {
		if col < e.Buffer.RunesInLine(line) {
			e.Buffer.Remove(line, col, line, col+1)
		} else if line < e.Buffer.Lines()-1 {
			e.Buffer.Remove(line, col, line+1, 0)
			joinedLine = true
		} else {
			return // Nothing after the cursor
		}
	} else {
		if col > 0 {
			e.Buffer.Remove(line, col-1, line, col)
			e.setCursor(e.cursor.SetLineCol(line, col-1))
		} else if line > 0 {
			prevLen := e.Buffer.RunesInLine(line - 1)
			e.Buffer.Remove(line-1, prevLen, line, 0)
			e.setCursor(e.cursor.SetLineCol(line-1, prevLen))
			line = line - 1
			joinedLine = true
		} else {
			return // Nothing before the cursor
		}
	}

	e.Dirty = true
	if joinedLine {
		e.Highlighter.InvalidateLines(line, e.Buffer.Lines()-1)
	} else {
		e.Highlighter.InvalidateLines(line, line)
	}
	e.ScrollToCursor()
}

func (e *LedgerEdit) setCursor(c buffer.Cursor) {
	e.cursor = c
	e.updateCursorVisibility()
}

// displayCol returns the screen column of the rune at col, accounting for
// tabs and wide runes before it.
func (e *LedgerEdit) displayCol(line, col int) int {
	data := strings.TrimRight(string(e.Buffer.Line(line)), "\r\n")
	var x int
	for _, r := range data {
		if col == 0 {
			break
		}
		if r == '\t' {
			x += e.TabSize
		} else {
			x += runewidth.RuneWidth(r)
		}
		col--
	}
	return x
}

// columnWidth returns the width of the line numbers column, zero when
// line numbers are off.
func (e *LedgerEdit) columnWidth() int {
	if !e.LineNumbers {
		return 0
	}
	return Max(3, 1+len(strconv.Itoa(e.Buffer.Lines())))
}

// ScrollToCursor adjusts the view offsets so the cursor is visible.
func (e *LedgerEdit) ScrollToCursor() {
	line, col := e.cursor.LineCol()

	if line >= e.scrolly+e.height {
		e.scrolly = line - e.height + 1
	} else if line < e.scrolly {
		e.scrolly = line
	}

	x := e.displayCol(line, col)
	textWidth := e.width - e.columnWidth()
	if x >= e.scrollx+textWidth {
		e.scrollx = x - textWidth + 1
	} else if x < e.scrollx {
		e.scrollx = x
	}
}

func (e *LedgerEdit) updateCursorVisibility() {
	if !e.focused {
		return
	}
	line, col := e.cursor.LineCol()
	x := e.x + e.columnWidth() + e.displayCol(line, col) - e.scrollx
	y := e.y + line - e.scrolly
	if y >= e.y && y < e.y+e.height {
		e.screen.ShowCursor(x, y)
	} else {
		e.screen.HideCursor()
	}
}

// Draw renders the LedgerEdit component.
func (e *LedgerEdit) Draw(s tcell.Screen) {
	defaultStyle := e.colorscheme.GetStyle(syntax.None)
	columnStyle := e.theme.GetOrDefault("LineNumbers")
	columnWidth := e.columnWidth()
	bufferLines := e.Buffer.Lines()

	DrawRect(s, e.x, e.y, e.width, e.height, ' ', defaultStyle)

	for row := 0; row < e.height; row++ {
		line := row + e.scrolly
		lineNumStr := ""

		if line < bufferLines {
			lineNumStr = strconv.Itoa(line + 1)

			data := strings.TrimRight(string(e.Buffer.Line(line)), "\r\n")
			matches := e.Highlighter.LineMatches(line)

			var matchIdx, runeIdx, screenX int
			for _, r := range data {
				width := runewidth.RuneWidth(r)
				if r == '\t' {
					width = e.TabSize
				}

				for matchIdx < len(matches) && runeIdx >= matches[matchIdx].EndCol {
					matchIdx++
				}
				style := defaultStyle
				if matchIdx < len(matches) && runeIdx >= matches[matchIdx].StartCol {
					style = e.Highlighter.GetStyle(matches[matchIdx])
				}

				x := e.x + columnWidth + screenX - e.scrollx
				if r != '\t' && x >= e.x+columnWidth && x+width <= e.x+e.width {
					s.SetContent(x, e.y+row, r, nil, style)
				}

				screenX += width
				runeIdx++
			}
		}

		if columnWidth > 0 {
			columnStr := strings.Repeat(" ", columnWidth-len(lineNumStr)-1) + lineNumStr + "│"
			DrawStr(s, e.x, e.y+row, columnStr, columnStyle)
		}
	}

	e.updateCursorVisibility()
}

func (e *LedgerEdit) SetFocused(v bool) {
	e.focused = v
	if v {
		e.updateCursorVisibility()
	} else {
		e.screen.HideCursor()
	}
}

// HandleEvent handles cursor movement and editing keys, returning whether
// the event was consumed.
func (e *LedgerEdit) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch ev.Key() {
	case tcell.KeyUp:
		e.setCursor(e.cursor.Up())
		e.ScrollToCursor()
	case tcell.KeyDown:
		e.setCursor(e.cursor.Down())
		e.ScrollToCursor()
	case tcell.KeyLeft:
		e.setCursor(e.cursor.Left())
		e.ScrollToCursor()
	case tcell.KeyRight:
		e.setCursor(e.cursor.Right())
		e.ScrollToCursor()
	case tcell.KeyHome:
		line, _ := e.cursor.LineCol()
		e.setCursor(e.cursor.SetLineCol(line, 0))
		e.ScrollToCursor()
	case tcell.KeyEnd:
		line, _ := e.cursor.LineCol()
		e.setCursor(e.cursor.SetLineCol(line, e.Buffer.RunesInLine(line)))
		e.ScrollToCursor()
	case tcell.KeyPgUp:
		_, col := e.cursor.LineCol()
		e.setCursor(e.cursor.SetLineCol(e.scrolly-e.height, col))
		e.ScrollToCursor()
	case tcell.KeyPgDn:
		_, col := e.cursor.LineCol()
		e.setCursor(e.cursor.SetLineCol(e.scrolly+e.height*2-1, col))
		e.ScrollToCursor()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.Delete(false)
	case tcell.KeyDelete:
		e.Delete(true)

	case tcell.KeyTab:
		e.Insert("\t")
	case tcell.KeyEnter:
		e.Insert("\n")
	case tcell.KeyRune:
		e.Insert(string(ev.Rune()))

	default:
		return false
	}
	return true
}
