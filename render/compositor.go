package render

import (
	"sort"

	"github.com/lixenwraith/termsprite/core"
)

// Compositor fills a frame buffer from a sprite snapshot, back-to-front.
// Scratch slices persist across ticks to keep the hot path allocation-free.
type Compositor struct {
	bg    RGB
	order []SpatialEntry
}

// NewCompositor creates a compositor clearing to the given background
func NewCompositor(bg RGB) *Compositor {
	return &Compositor{
		bg:    bg,
		order: make([]SpatialEntry, 0, 64),
	}
}

// Background returns the clear color
func (c *Compositor) Background() RGB {
	return c.bg
}

// SetBackground changes the clear color for subsequent frames
func (c *Compositor) SetBackground(bg RGB) {
	c.bg = bg
}

// Compose renders visible on-screen sprites into dst in depth order.
// Lower depth draws first; higher depth overwrites it. Ties are broken by
// entity id ascending, so output is deterministic for identical input.
// Sprites with no on-screen cells were excluded at index build time.
func (c *Compositor) Compose(dst *FrameBuffer, ix *SpatialIndex, sprites []Sprite) {
	dst.Clear(c.bg)

	screen := core.NewRect(0, 0, dst.width, dst.height)
	c.order = ix.entriesOverlapping(screen, c.order[:0])

	sort.Slice(c.order, func(i, j int) bool {
		a, b := &c.order[i], &c.order[j]
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		return a.Entity < b.Entity
	})

	for i := range c.order {
		c.drawSprite(dst, &sprites[c.order[i].idx])
	}
}

// drawSprite writes every opaque cell of the sprite that lands in bounds
func (c *Compositor) drawSprite(dst *FrameBuffer, s *Sprite) {
	g := s.Grid
	for gy := 0; gy < g.H; gy++ {
		sy := s.Y + gy
		if sy < 0 || sy >= dst.height {
			continue
		}
		for gx := 0; gx < g.W; gx++ {
			src := &g.Cells[gy*g.W+gx]
			if src.Transparent {
				continue
			}
			sx := s.X + gx
			if sx < 0 || sx >= dst.width {
				continue
			}
			c.writeCell(dst, sx, sy, src, s.Depth)
		}
	}
}

// writeCell overwrites the target cell, pairing wide glyphs with their
// continuation cell. A wide glyph whose right half would fall outside the
// buffer degrades to a blank narrow cell: keeping the 2-column glyph in a
// 1-column cell would desynchronize the model from the device cursor.
func (c *Compositor) writeCell(dst *FrameBuffer, x, y int, src *SpriteCell, depth int64) {
	glyph := src.Glyph
	w := cellWidth(glyph)
	if w == widthWide && x+1 >= dst.width {
		glyph = ""
		w = widthNarrow
	}

	c.breakWidePair(dst, x, y)
	*dst.at(x, y) = Cell{
		Glyph: glyph,
		Fg:    src.Fg,
		Bg:    src.Bg,
		Attrs: src.Attrs,
		Width: w,
		Depth: depth,
	}

	if w == widthWide {
		c.breakWidePair(dst, x+1, y)
		*dst.at(x+1, y) = Cell{
			Fg:    src.Fg,
			Bg:    src.Bg,
			Attrs: src.Attrs,
			Width: widthContinuation,
			Depth: depth,
		}
	}
}

// breakWidePair restores the invariant that a wide glyph and its
// continuation move or clear only as a unit: overwriting either half
// blanks the surviving half to its own background.
func (c *Compositor) breakWidePair(dst *FrameBuffer, x, y int) {
	cell := dst.at(x, y)
	switch {
	case cell.IsContinuation() && x > 0:
		owner := dst.at(x-1, y)
		if owner.IsWide() {
			owner.Glyph = ""
			owner.Width = widthNarrow
		}
	case cell.IsWide() && x+1 < dst.width:
		cont := dst.at(x+1, y)
		if cont.IsContinuation() {
			cont.Glyph = ""
			cont.Width = widthNarrow
		}
	}
}
