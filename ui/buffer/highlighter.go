package buffer

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"cashed/syntax"
)

// A Colorscheme maps highlighting categories to display styles. The
// syntax.None entry is the fallback for uncategorized text.
type Colorscheme map[syntax.Category]tcell.Style

// GetStyle returns the style for the given category, falling back to the
// syntax.None entry, and finally to tcell's default style.
func (c Colorscheme) GetStyle(cat syntax.Category) tcell.Style {
	if c != nil {
		if style, ok := c[cat]; ok {
			return style
		}
		if style, ok := c[syntax.None]; ok {
			return style
		}
	}
	return tcell.StyleDefault
}

// A Match is a classified region of a single line. Columns count runes;
// EndCol is exclusive. Matches of a line are ordered by StartCol and never
// overlap, mirroring the spans they were made from.
type Match struct {
	StartCol int
	EndCol   int
	Category syntax.Category
}

// A Highlighter caches per-line classification of a Buffer so a draw pass
// only reclassifies lines that were edited. Lines are classified lazily:
// callers invalidate edited lines and the next LineMatches call for an
// invalidated line recomputes it.
type Highlighter struct {
	Buffer      Buffer
	Colorscheme Colorscheme

	lineMatches [][]Match // nil entry = invalidated line
}

func NewHighlighter(buffer Buffer, colorscheme Colorscheme) *Highlighter {
	return &Highlighter{
		Buffer:      buffer,
		Colorscheme: colorscheme,
		lineMatches: make([][]Match, buffer.Lines()),
	}
}

// InvalidateLines marks lines startLine through endLine, inclusive, as
// needing reclassification, and re-syncs the cache with the buffer's line
// count. Call it after every buffer edit; an edit that changed the number
// of lines should invalidate through the last line.
func (h *Highlighter) InvalidateLines(startLine, endLine int) {
	lines := h.Buffer.Lines()
	if len(h.lineMatches) < lines {
		h.lineMatches = append(h.lineMatches, make([][]Match, lines-len(h.lineMatches))...)
	} else if len(h.lineMatches) > lines {
		h.lineMatches = h.lineMatches[:lines]
	}
	for i := startLine; i <= endLine && i < len(h.lineMatches); i++ {
		h.lineMatches[i] = nil
	}
}

// LineMatches returns the classified regions of the given line, computing
// them if the line was invalidated. The returned slice is owned by the
// Highlighter: do not modify it.
func (h *Highlighter) LineMatches(line int) []Match {
	if line < 0 || line >= len(h.lineMatches) {
		return nil
	}
	if h.lineMatches[line] == nil {
		h.lineMatches[line] = matchLine(h.Buffer.Line(line))
	}
	return h.lineMatches[line]
}

// GetStyle returns the display style for a match.
func (h *Highlighter) GetStyle(m Match) tcell.Style {
	return h.Colorscheme.GetStyle(m.Category)
}

// matchLine classifies one line of the buffer and converts the byte-offset
// spans into rune-column matches.
func matchLine(data []byte) []Match {
	spans := syntax.Classify(string(data))
	matches := make([]Match, 0, len(spans))

	var byteIdx, runeIdx int
	runeColAt := func(offset int) int {
		for byteIdx < offset && byteIdx < len(data) {
			_, size := utf8.DecodeRune(data[byteIdx:])
			byteIdx += size
			runeIdx++
		}
		return runeIdx
	}

	// Spans are sorted, so one forward walk maps all offsets.
	for _, s := range spans {
		start := runeColAt(s.Start)
		end := runeColAt(s.End)
		matches = append(matches, Match{start, end, s.Category})
	}
	return matches
}
