package viewport

import (
	"os"

	"golang.org/x/term"
)

const (
	// DefaultCellWidth approximates how many pixels one terminal column stands for
	DefaultCellWidth = 8
	// DefaultWidth is used when the terminal size can't be read
	DefaultWidth = 1280
)

// Viewport reports the current display width in pixels. It is read fresh every time.
type Viewport interface {
	Width() int
}

// Fixed is a viewport that never changes size
type Fixed int

func (f Fixed) Width() int {
	return int(f)
}

// Terminal measures the terminal attached to FD
type Terminal struct {
	FD        int
	CellWidth int
}

// NewTerminal measures stdout
func NewTerminal(cellWidth int) Terminal {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return Terminal{FD: int(os.Stdout.Fd()), CellWidth: cellWidth}
}

// Width converts the terminal's columns to pixels. Falls back to DefaultWidth when FD isn't a terminal.
func (t Terminal) Width() int {
	cols, _, err := term.GetSize(t.FD)
	if err != nil || cols <= 0 {
		return DefaultWidth
	}
	return ColumnsToPixels(cols, t.CellWidth)
}

// ColumnsToPixels converts a terminal width in columns to pixels
func ColumnsToPixels(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return cols * cellWidth
}
