package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A StatusBar is a one-line component showing a left-aligned text and a
// right-aligned text. When Error is set the left text uses the error
// style, for surfacing parse failures without leaving the editor.
type StatusBar struct {
	Left  string
	Right string
	Error bool

	baseComponent
}

func NewStatusBar(theme *Theme) *StatusBar {
	return &StatusBar{baseComponent: baseComponent{theme: theme}}
}

func (b *StatusBar) Draw(s tcell.Screen) {
	style := b.theme.GetOrDefault("StatusBar")
	DrawRect(s, b.x, b.y, b.width, b.height, ' ', style)

	leftStyle := style
	if b.Error {
		leftStyle = b.theme.GetOrDefault("StatusBarError")
	}

	left := b.Left
	if maxw := b.width - 2; runewidth.StringWidth(left) > maxw {
		left = runewidth.Truncate(left, maxw, "…")
	}
	DrawStr(s, b.x+1, b.y, left, leftStyle)

	if b.Right != "" {
		x := b.x + b.width - runewidth.StringWidth(b.Right) - 1
		// Never draw over the left text
		if x > b.x+1+runewidth.StringWidth(left)+1 {
			DrawStr(s, x, b.y, b.Right, style)
		}
	}
}

func (b *StatusBar) HandleEvent(event tcell.Event) bool {
	return false
}

// SetLeft joins non-empty parts with a separator into the left text.
func (b *StatusBar) SetLeft(parts ...string) {
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	b.Left = strings.Join(nonEmpty, "  ")
}
