package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"cashed/syntax"
	"cashed/ui/buffer"
)

// A Theme is a map of widget names to styles. Components look their styles
// up by key; a missing key falls back to the DefaultTheme value.
type Theme map[string]tcell.Style

func (theme *Theme) GetOrDefault(key string) tcell.Style {
	if theme != nil {
		if val, ok := (*theme)[key]; ok {
			return val
		}
	}

	if val, ok := DefaultTheme[key]; ok {
		return val
	}
	panic(fmt.Sprintf("key %q not present in default theme", key))
}

// DefaultTheme uses only the first 16 colors present in most colored
// terminals.
var DefaultTheme = Theme{
	"Normal":         tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"LineNumbers":    tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	"StatusBar":      tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"StatusBarError": tcell.Style{}.Foreground(tcell.ColorMaroon).Background(tcell.ColorSilver),
	"Prompt":         tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
}

// DefaultColorscheme styles the six ledger highlighting categories.
// Positive-sense accounts (assets, income) green, negative-sense accounts
// (expenses, liabilities) red, matching the asset/expense convention of
// the ledger format.
var DefaultColorscheme = buffer.Colorscheme{
	syntax.None:        tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	syntax.Keyword:     tcell.Style{}.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	syntax.Number:      tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	syntax.Date:        tcell.Style{}.Foreground(tcell.ColorTeal).Background(tcell.ColorBlack),
	syntax.Comment:     tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	syntax.PositiveRef: tcell.Style{}.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	syntax.NegativeRef: tcell.Style{}.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
}

var categoryNames = map[string]syntax.Category{
	"text":     syntax.None,
	"keyword":  syntax.Keyword,
	"number":   syntax.Number,
	"date":     syntax.Date,
	"comment":  syntax.Comment,
	"positive": syntax.PositiveRef,
	"negative": syntax.NegativeRef,
}

type styleSpec struct {
	FG        string `yaml:"fg"`
	BG        string `yaml:"bg"`
	Bold      bool   `yaml:"bold"`
	Underline bool   `yaml:"underline"`
}

type themeFile struct {
	Syntax map[string]styleSpec `yaml:"syntax"`
	UI     map[string]styleSpec `yaml:"ui"`
}

func (spec styleSpec) style(base tcell.Style) tcell.Style {
	style := base
	if spec.FG != "" {
		style = style.Foreground(tcell.GetColor(spec.FG))
	}
	if spec.BG != "" {
		style = style.Background(tcell.GetColor(spec.BG))
	}
	return style.Bold(spec.Bold).Underline(spec.Underline)
}

// LoadTheme reads a YAML theme file and returns the default theme and
// colorscheme with the file's entries applied on top. The file has two
// maps: "syntax" keyed by category name (text, keyword, number, date,
// comment, positive, negative) and "ui" keyed by widget name. Colors are
// tcell color names or #rrggbb.
func LoadTheme(path string) (Theme, buffer.Colorscheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading theme: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing theme %s: %w", path, err)
	}

	theme := make(Theme, len(DefaultTheme))
	for key, style := range DefaultTheme {
		theme[key] = style
	}
	for key, spec := range file.UI {
		if _, ok := DefaultTheme[key]; !ok {
			return nil, nil, fmt.Errorf("theme %s: unknown ui element %q", path, key)
		}
		theme[key] = spec.style(theme[key])
	}

	colorscheme := make(buffer.Colorscheme, len(DefaultColorscheme))
	for cat, style := range DefaultColorscheme {
		colorscheme[cat] = style
	}
	for name, spec := range file.Syntax {
		cat, ok := categoryNames[name]
		if !ok {
			return nil, nil, fmt.Errorf("theme %s: unknown syntax category %q", path, name)
		}
		colorscheme[cat] = spec.style(colorscheme[cat])
	}

	return theme, colorscheme, nil
}
