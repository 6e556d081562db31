package display

import "github.com/muesli/reflow/wordwrap"

// Wrap word-wraps text to width, preserving ANSI escape sequences. A width of
// zero or less returns text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
