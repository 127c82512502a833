package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/addonsync/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled is set from terminal detection but can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Status renders a status message the way the banner would: green for
// success, red for errors. A nil message renders as an empty string.
func Status(msg *model.StatusMessage) string {
	if msg == nil {
		return ""
	}
	if msg.IsError() {
		return Red(msg.Text)
	}
	return Green(msg.Text)
}

// DefaultMaxURLWidth is the default maximum visible width for URL columns.
const DefaultMaxURLWidth = 60

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}

	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is never padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(t.colWidths)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible characters. When s is too
// long and maxWidth leaves room, the last three visible characters become
// "...". ANSI escape codes are preserved up to the cut, followed by a
// reset.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	if maxWidth < len(ellipsis) {
		cut, _ := cutVisible(s, maxWidth)
		return cut
	}

	cut, hasAnsi := cutVisible(s, maxWidth-len(ellipsis))
	cut += ellipsis
	if hasAnsi {
		cut += colorReset
	}
	return cut
}

// cutVisible keeps the first n visible characters of s along with any
// escape sequences before them. It reports whether s contained escapes.
func cutVisible(s string, n int) (string, bool) {
	var b strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			hasAnsi = true
			b.WriteRune(r)
			continue
		}
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if visible >= n {
			break
		}
		b.WriteRune(r)
		visible++
	}
	return b.String(), hasAnsi
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}

	return width
}
