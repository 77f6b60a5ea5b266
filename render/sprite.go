package render

import (
	"strings"

	"github.com/lixenwraith/termsprite/core"
)

// SpriteCell is one source cell of a sprite grid. Transparent cells
// contribute nothing when composited, letting lower sprites show through.
type SpriteCell struct {
	Glyph       string
	Fg          RGB
	Bg          RGB
	Attrs       Attr
	Transparent bool
}

// Grid is a rectangular sprite glyph grid, row-major
type Grid struct {
	W, H  int
	Cells []SpriteCell
}

// NewGrid creates a grid of fully transparent cells
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]SpriteCell, w*h)
	for i := range cells {
		cells[i].Transparent = true
	}
	return &Grid{W: w, H: h, Cells: cells}
}

// At returns a pointer to the cell at (x, y), nil if out of bounds
func (g *Grid) At(x, y int) *SpriteCell {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return nil
	}
	return &g.Cells[y*g.W+x]
}

// Set writes the cell at (x, y), ignoring out-of-bounds coordinates
func (g *Grid) Set(x, y int, c SpriteCell) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.Cells[y*g.W+x] = c
}

// TextOptions controls grid construction from multiline text
type TextOptions struct {
	Transparent rune // cluster equal to this rune becomes transparent; 0 disables
	Fg          RGB
	Bg          RGB
	Attrs       Attr
}

// NewGridFromText builds a grid from multiline text. Grid columns are
// screen columns: a wide cluster occupies its cell plus a transparent
// filler to its right, so row widths stay aligned. Lines shorter than the
// widest line are padded with transparent cells.
func NewGridFromText(text string, opts TextOptions) *Grid {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	rows := make([][]string, len(lines))
	w := 0
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		clusters := Graphemes(line)
		rows[i] = clusters

		cols := 0
		for _, cl := range clusters {
			cols += int(cellWidth(cl))
		}
		if cols > w {
			w = cols
		}
	}

	g := NewGrid(w, len(rows))
	for y, clusters := range rows {
		x := 0
		for _, cl := range clusters {
			cw := cellWidth(cl)
			transparent := opts.Transparent != 0 && cl == string(opts.Transparent)
			g.Set(x, y, SpriteCell{
				Glyph:       cl,
				Fg:          opts.Fg,
				Bg:          opts.Bg,
				Attrs:       opts.Attrs,
				Transparent: transparent,
			})
			// Filler under the right half of a wide cluster stays transparent
			x += int(cw)
		}
	}
	return g
}

// Sprite is a per-tick immutable snapshot of one renderable entity.
// Position is the top-left screen coordinate; it may place the sprite
// partially or fully off-screen.
type Sprite struct {
	Entity  core.Entity
	X, Y    int
	Depth   int64
	Visible bool
	Grid    *Grid
}

// Bounds returns the sprite's screen-space bounding box.
// Empty when the grid is nil or has no cells.
func (s *Sprite) Bounds() core.Rect {
	if s.Grid == nil {
		return core.NewRect(s.X, s.Y, 0, 0)
	}
	return core.NewRect(s.X, s.Y, s.Grid.W, s.Grid.H)
}
