package render

import (
	"github.com/lixenwraith/termsprite/terminal"
)

// RGB and Attr alias terminal types to avoid copying at the flush boundary
type RGB = terminal.RGB
type Attr = terminal.Attr

// Cell widths. A wide glyph owns its cell plus the continuation cell to its
// right; the continuation is never diffed or written on its own.
const (
	widthContinuation = 0
	widthNarrow       = 1
	widthWide         = 2
)

// Cell is one frame buffer position. An empty Glyph renders as a blank
// space over Bg. Depth records which sprite layer painted the cell, used
// only for diagnostics and tie-break assertions, never for diffing.
type Cell struct {
	Glyph string // grapheme cluster; "" when empty or continuation
	Fg    RGB
	Bg    RGB
	Attrs Attr
	Width uint8 // widthNarrow, widthWide, or widthContinuation
	Depth int64 // origin depth of the painting sprite
}

// IsContinuation reports whether the cell is the reserved right half of a
// wide glyph
func (c *Cell) IsContinuation() bool {
	return c.Width == widthContinuation
}

// IsWide reports whether the cell owns a continuation cell to its right
func (c *Cell) IsWide() bool {
	return c.Width == widthWide
}

// visualEqual compares the attributes that reach the terminal.
// Depth is provenance, not pixels; two cells painted by different sprites
// with identical looks are equal.
func visualEqual(a, b *Cell) bool {
	return a.Glyph == b.Glyph &&
		a.Width == b.Width &&
		a.Attrs == b.Attrs &&
		a.Fg == b.Fg &&
		a.Bg == b.Bg
}

// emptyCell returns the default cell used for cleared buffers
func emptyCell(bg RGB) Cell {
	return Cell{Bg: bg, Width: widthNarrow}
}
