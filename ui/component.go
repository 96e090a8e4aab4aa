package ui

import (
	"github.com/gdamore/tcell/v2"
)

// A Component is anything that can draw itself into a bounding rectangle
// of the screen and optionally handle input events. After constructing a
// component, call SetPos and SetSize before drawing it.
type Component interface {
	Draw(tcell.Screen)
	// Components can be focused, which may affect how they handle events
	// or draw. A focused editor shows the terminal cursor, for example.
	SetFocused(bool)
	SetTheme(*Theme)

	GetPos() (x, y int)
	SetPos(x, y int)
	GetSize() (w, h int)
	SetSize(w, h int)

	// HandleEvent reports whether the event was handled. Components only
	// handle events while focused.
	HandleEvent(tcell.Event) bool
}

// baseComponent carries the boilerplate fields and defaults shared by
// components; embed it and override what the component needs.
type baseComponent struct {
	focused       bool
	x, y          int
	width, height int
	theme         *Theme
}

func (c *baseComponent) SetFocused(v bool) {
	c.focused = v
}

func (c *baseComponent) SetTheme(theme *Theme) {
	c.theme = theme
}

func (c *baseComponent) GetPos() (int, int) {
	return c.x, c.y
}

func (c *baseComponent) SetPos(x, y int) {
	c.x, c.y = x, y
}

func (c *baseComponent) GetSize() (int, int) {
	return c.width, c.height
}

func (c *baseComponent) SetSize(width, height int) {
	c.width, c.height = width, height
}
