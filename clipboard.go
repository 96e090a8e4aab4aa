package main

import "github.com/zyedidia/clipboard"

type clipMethod uint8

const (
	clipExternal clipMethod = iota
	clipInternal
)

var clipCurrentMethod clipMethod

var internalClipboard string

// clipInitialize tries to set up the system clipboard. If that fails, an
// in-process fallback is used, so copy keeps working inside one session
// even without a clipboard provider.
func clipInitialize() clipMethod {
	if err := clipboard.Initialize(); err != nil {
		clipCurrentMethod = clipInternal
	} else {
		clipCurrentMethod = clipExternal
	}
	return clipCurrentMethod
}

// clipWrite sets the clipboard contents using the chosen method.
func clipWrite(content string) error {
	if clipCurrentMethod == clipExternal {
		return clipboard.WriteAll(content, "clipboard")
	}
	internalClipboard = content
	return nil
}

// clipRead returns the clipboard contents using the chosen method.
func clipRead() (string, error) {
	if clipCurrentMethod == clipExternal {
		return clipboard.ReadAll("clipboard")
	}
	return internalClipboard, nil
}
