package render

import (
	"testing"

	"github.com/lixenwraith/termsprite/core"
)

var (
	testBg = RGB{R: 10, G: 10, B: 10}
	red    = RGB{R: 255, G: 0, B: 0}
	green  = RGB{R: 0, G: 255, B: 0}
	blue   = RGB{R: 0, G: 0, B: 255}
)

// testSprite builds a sprite from text art; '.' cells are transparent
func testSprite(e core.Entity, x, y int, depth int64, art string, fg RGB) Sprite {
	grid := NewGridFromText(art, TextOptions{Transparent: '.', Fg: fg})
	return Sprite{Entity: e, X: x, Y: y, Depth: depth, Visible: true, Grid: grid}
}

func compose(sprites []Sprite, width, height int) *FrameBuffer {
	buf := NewFrameBuffer(width, height, testBg)
	ix := BuildIndex(sprites, width, height)
	NewCompositor(testBg).Compose(buf, ix, sprites)
	return buf
}

func TestComposeDeterminism(t *testing.T) {
	sprites := []Sprite{
		testSprite(3, 2, 1, 5, "##\n##", red),
		testSprite(1, 0, 0, 5, "XX\nXX", green),
		testSprite(2, 1, 1, 2, "ab", blue),
	}

	a := compose(sprites, 8, 4)
	b := compose(sprites, 8, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Errorf("Expected identical buffers, cell (%d, %d) differs: %+v vs %+v",
					x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestComposeOcclusion(t *testing.T) {
	sprites := []Sprite{
		testSprite(1, 0, 0, 0, "AA\nAA", red),
		testSprite(2, 1, 0, 1, "BB\nBB", green),
	}

	buf := compose(sprites, 4, 2)

	// Overlap region is columns 1-2; B must win everywhere it covers
	for y := 0; y < 2; y++ {
		for x := 1; x <= 2; x++ {
			c := buf.At(x, y)
			if c.Glyph != "B" {
				t.Errorf("Expected 'B' at (%d, %d), got %q", x, y, c.Glyph)
			}
			if c.Depth != 1 {
				t.Errorf("Expected depth 1 at (%d, %d), got %d", x, y, c.Depth)
			}
		}
	}
	if buf.At(0, 0).Glyph != "A" {
		t.Errorf("Expected 'A' at (0, 0), got %q", buf.At(0, 0).Glyph)
	}
}

func TestComposeDepthTieBreak(t *testing.T) {
	// Same depth: higher entity id draws later and wins
	sprites := []Sprite{
		testSprite(7, 0, 0, 3, "X", red),
		testSprite(4, 0, 0, 3, "Y", green),
	}

	buf := compose(sprites, 2, 1)
	if got := buf.At(0, 0).Glyph; got != "X" {
		t.Errorf("Expected entity 7 to win tie, got %q", got)
	}
}

func TestComposeTransparency(t *testing.T) {
	sprites := []Sprite{
		testSprite(1, 0, 0, 0, "ab", red),
		testSprite(2, 0, 0, 1, ".Z", green),
	}

	buf := compose(sprites, 3, 1)

	// Transparent cell of the higher sprite leaves the lower one visible
	if got := buf.At(0, 0).Glyph; got != "a" {
		t.Errorf("Expected lower sprite 'a' through transparent cell, got %q", got)
	}
	if got := buf.At(1, 0).Glyph; got != "Z" {
		t.Errorf("Expected 'Z' at (1, 0), got %q", got)
	}
}

func TestComposeWideGlyph(t *testing.T) {
	sprites := []Sprite{testSprite(1, 0, 0, 0, "日", red)}

	buf := compose(sprites, 4, 1)

	owner := buf.At(0, 0)
	if owner.Glyph != "日" || !owner.IsWide() {
		t.Errorf("Expected wide owner at (0, 0), got %+v", owner)
	}
	cont := buf.At(1, 0)
	if !cont.IsContinuation() {
		t.Errorf("Expected continuation at (1, 0), got %+v", cont)
	}
	if cont.Fg != red {
		t.Errorf("Expected continuation to carry owner fg, got %+v", cont.Fg)
	}
}

func TestComposeWideGlyphClippedAtEdge(t *testing.T) {
	// Right half would land at x=4, outside a 4-wide buffer. The cell
	// degrades to a blank narrow cell so the glyph string never claims
	// more columns than the cell occupies.
	sprites := []Sprite{testSprite(1, 3, 0, 0, "日", red)}

	buf := compose(sprites, 4, 1)

	edge := buf.At(3, 0)
	if edge.Glyph != "" {
		t.Errorf("Expected blank glyph at (3, 0), got %q", edge.Glyph)
	}
	if edge.Width != widthNarrow {
		t.Errorf("Expected clipped width 1, got %d", edge.Width)
	}
	if !edge.Fg.Equal(red) {
		t.Errorf("Expected clipped cell to keep its foreground")
	}
}

func TestComposeBreaksWidePair(t *testing.T) {
	// Higher sprite overwrites the continuation; the owner must blank
	sprites := []Sprite{
		testSprite(1, 0, 0, 0, "日", red),
		testSprite(2, 1, 0, 1, "X", green),
	}

	buf := compose(sprites, 4, 1)

	owner := buf.At(0, 0)
	if owner.Glyph != "" || owner.Width != widthNarrow {
		t.Errorf("Expected blanked owner after pair break, got %+v", owner)
	}
	if got := buf.At(1, 0).Glyph; got != "X" {
		t.Errorf("Expected 'X' at (1, 0), got %q", got)
	}
}

func TestComposeBreaksWidePairOnOwner(t *testing.T) {
	// Higher sprite overwrites the owner; the continuation must blank
	sprites := []Sprite{
		testSprite(1, 0, 0, 0, "日", red),
		testSprite(2, 0, 0, 1, "X", green),
	}

	buf := compose(sprites, 4, 1)

	if got := buf.At(0, 0).Glyph; got != "X" {
		t.Errorf("Expected 'X' at (0, 0), got %q", got)
	}
	cont := buf.At(1, 0)
	if cont.IsContinuation() {
		t.Errorf("Expected continuation cleared, got %+v", cont)
	}
	if cont.Fg != red {
		t.Errorf("Expected surviving half to keep its own colors, got %+v", cont.Fg)
	}
}

func TestComposeOffscreenSprites(t *testing.T) {
	sprites := []Sprite{
		testSprite(1, -10, -10, 0, "##", red),
		testSprite(2, 100, 100, 0, "##", red),
		{Entity: 3, X: 0, Y: 0, Depth: 0, Visible: false,
			Grid: NewGridFromText("##", TextOptions{Fg: red})},
		{Entity: 4, X: 0, Y: 0, Depth: 0, Visible: true, Grid: nil},
	}

	buf := compose(sprites, 4, 2)

	empty := emptyCell(testBg)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if buf.At(x, y) != empty {
				t.Errorf("Expected empty cell at (%d, %d), got %+v", x, y, buf.At(x, y))
			}
		}
	}
}

func TestComposePartialClip(t *testing.T) {
	// Sprite straddles the top-left corner; only in-bounds cells land
	sprites := []Sprite{testSprite(1, -1, -1, 0, "ab\ncd", red)}

	buf := compose(sprites, 4, 2)

	if got := buf.At(0, 0).Glyph; got != "d" {
		t.Errorf("Expected 'd' at (0, 0), got %q", got)
	}
	if got := buf.At(1, 0); got != emptyCell(testBg) {
		t.Errorf("Expected empty at (1, 0), got %+v", got)
	}
}
