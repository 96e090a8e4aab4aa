package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A Prompt is a one-line input field with a label, confirmed with Enter
// and dismissed with Escape. It is meant to be drawn over the status bar
// for short questions like "go to line".
type Prompt struct {
	Label string
	Text  string

	// Callback receives the entered text on Enter; Cancel is called on
	// Escape. Either may be nil.
	Callback func(string)
	Cancel   func()

	cursorPos int
	scrollPos int
	screen    tcell.Screen

	baseComponent
}

func NewPrompt(screen tcell.Screen, label string, theme *Theme, callback func(string), cancel func()) *Prompt {
	return &Prompt{
		Label:    label,
		Callback: callback,
		Cancel:   cancel,
		screen:   screen,

		baseComponent: baseComponent{theme: theme},
	}
}

// setCursorPos clamps and applies the cursor offset, scrolling the text
// to keep it visible.
func (p *Prompt) setCursorPos(offset int) {
	offset = Clamp(offset, 0, len(p.Text))

	avail := p.textWidth()
	if offset >= p.scrollPos+avail {
		p.scrollPos = offset - avail + 1
	} else if offset < p.scrollPos {
		p.scrollPos = offset
	}

	p.cursorPos = offset
	if p.focused {
		p.screen.ShowCursor(p.x+runewidth.StringWidth(p.Label)+offset-p.scrollPos, p.y)
	}
}

// textWidth is the room left for the text after the label.
func (p *Prompt) textWidth() int {
	return Max(1, p.width-runewidth.StringWidth(p.Label))
}

func (p *Prompt) Draw(s tcell.Screen) {
	style := p.theme.GetOrDefault("Prompt")

	DrawRect(s, p.x, p.y, p.width, p.height, ' ', style)
	DrawStr(s, p.x, p.y, p.Label, style)

	if len(p.Text) > 0 {
		end := Min(len(p.Text), p.scrollPos+p.textWidth())
		DrawStr(s, p.x+runewidth.StringWidth(p.Label), p.y, p.Text[p.scrollPos:end], style)
	}

	p.setCursorPos(p.cursorPos)
}

func (p *Prompt) SetFocused(v bool) {
	p.focused = v
	if v {
		p.setCursorPos(p.cursorPos)
	} else {
		p.screen.HideCursor()
	}
}

func (p *Prompt) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		if p.Callback != nil {
			p.Callback(p.Text)
		}
	case tcell.KeyEscape:
		if p.Cancel != nil {
			p.Cancel()
		}
	case tcell.KeyLeft:
		p.setCursorPos(p.cursorPos - 1)
	case tcell.KeyRight:
		p.setCursorPos(p.cursorPos + 1)
	case tcell.KeyHome:
		p.setCursorPos(0)
	case tcell.KeyEnd:
		p.setCursorPos(len(p.Text))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.cursorPos > 0 {
			p.Text = p.Text[:p.cursorPos-1] + p.Text[p.cursorPos:]
			p.setCursorPos(p.cursorPos - 1)
		}
	case tcell.KeyDelete:
		if p.cursorPos < len(p.Text) {
			p.Text = p.Text[:p.cursorPos] + p.Text[p.cursorPos+1:]
		}
	case tcell.KeyRune:
		p.Text = p.Text[:p.cursorPos] + string(ev.Rune()) + p.Text[p.cursorPos:]
		p.setCursorPos(p.cursorPos + 1)
	default:
		return false
	}
	return true
}
