package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"cashed/ledger"
	"cashed/ui"
)

var editThemePath string

var editCmd = &cobra.Command{
	Use:   "edit FILE",
	Short: "Edit a ledger file with syntax highlighting",
	Long: `Opens FILE in a full-screen terminal editor with ledger syntax
highlighting. The file is created on first save if it does not exist.

Keys:
  Ctrl-S  save
  Ctrl-Q  quit
  Ctrl-K  copy the current line to the clipboard
  Ctrl-U  paste the clipboard after the cursor
  Ctrl-G  go to line`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(args[0])
	},
}

func init() {
	editCmd.Flags().StringVar(&editThemePath, "theme", "", "YAML theme file")
	rootCmd.AddCommand(editCmd)
}

func runEdit(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	theme := ui.DefaultTheme
	colorscheme := ui.DefaultColorscheme
	if editThemePath != "" {
		theme, colorscheme, err = ui.LoadTheme(editThemePath)
		if err != nil {
			return err
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini() // Also restores the terminal when we panic

	clipInitialize()

	editor := ui.NewLedgerEdit(s, path, contents, &theme, colorscheme)
	status := ui.NewStatusBar(&theme)
	var prompt *ui.Prompt

	layout := func() {
		sizex, sizey := s.Size()
		editor.SetPos(0, 0)
		editor.SetSize(sizex, sizey-1)
		status.SetPos(0, sizey-1)
		status.SetSize(sizex, 1)
		if prompt != nil {
			prompt.SetPos(0, sizey-1)
			prompt.SetSize(sizex, 1)
		}
	}
	layout()
	editor.SetFocused(true)

	// The parse status in the bar is recomputed after every edit; ledger
	// files are small enough that a full reparse per keystroke is fine.
	parseErr := checkBuffer(editor)

	closePrompt := func() {
		prompt = nil
		editor.SetFocused(true)
	}

	for {
		status.Error = parseErr != nil
		status.SetLeft(path, dirtyMarker(editor), parseStatus(parseErr))
		line, col := editor.CursorLineCol()
		status.Right = fmt.Sprintf("%d:%d", line+1, col+1)

		s.Clear()
		editor.Draw(s)
		if prompt != nil {
			prompt.Draw(s)
		} else {
			status.Draw(s)
		}
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			layout()
			s.Sync()
		case *tcell.EventKey:
			if prompt != nil {
				prompt.HandleEvent(ev)
				continue
			}

			switch ev.Key() {
			case tcell.KeyCtrlQ:
				return nil
			case tcell.KeyCtrlS:
				if err := save(editor, path); err != nil {
					parseErr = err
				} else {
					parseErr = checkBuffer(editor)
				}
			case tcell.KeyCtrlK:
				_ = clipWrite(editor.CurrentLine())
			case tcell.KeyCtrlU:
				if text, err := clipRead(); err == nil && text != "" {
					editor.Insert(text)
					parseErr = checkBuffer(editor)
				}
			case tcell.KeyCtrlG:
				prompt = ui.NewPrompt(s, "Go to line: ", &theme,
					func(text string) {
						if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
							editor.GoToLine(n)
						}
						closePrompt()
					},
					closePrompt)
				layout()
				editor.SetFocused(false)
				prompt.SetFocused(true)
			default:
				if editor.HandleEvent(ev) {
					parseErr = checkBuffer(editor)
				}
			}
		}
	}
}

func save(editor *ui.LedgerEdit, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := editor.Buffer.WriteTo(file); err != nil {
		return err
	}
	editor.Dirty = false
	return nil
}

// checkBuffer reparses the buffer and returns the first error.
func checkBuffer(editor *ui.LedgerEdit) error {
	_, err := ledger.Parse(bytes.NewReader(editor.Buffer.Bytes()))
	return err
}

func dirtyMarker(editor *ui.LedgerEdit) string {
	if editor.Dirty {
		return "[+]"
	}
	return ""
}

func parseStatus(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
