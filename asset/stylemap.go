package asset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/termsprite/core"
	"github.com/lixenwraith/termsprite/render"
	"github.com/lixenwraith/termsprite/terminal"
)

// Style is one stylemap entry. Unset colors leave the grid cell's color
// untouched, so a region can recolor foregrounds without flattening
// backgrounds.
type Style struct {
	Fg    render.RGB
	Bg    render.RGB
	HasFg bool
	HasBg bool
	Attrs render.Attr
}

// Region applies a style to a rectangle of grid cells
type Region struct {
	Rect  core.Rect
	Style Style
}

// StyleMap assigns styles to a sprite grid: an optional default covering
// every cell, then regions applied in file order (later regions win)
type StyleMap struct {
	Default *Style
	Regions []Region
}

// TOML wire format
type styleMapFile struct {
	Default *styleFileEntry   `toml:"default"`
	Regions []regionFileEntry `toml:"region"`
}

type styleFileEntry struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Blink     bool   `toml:"blink"`
	Reverse   bool   `toml:"reverse"`
}

type regionFileEntry struct {
	X         int    `toml:"x"`
	Y         int    `toml:"y"`
	W         int    `toml:"w"`
	H         int    `toml:"h"`
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Blink     bool   `toml:"blink"`
	Reverse   bool   `toml:"reverse"`
}

// LoadStyleMap reads a TOML stylemap file
func LoadStyleMap(path string) (*StyleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylemap %s: %w", path, err)
	}
	sm, err := ParseStyleMap(data)
	if err != nil {
		return nil, fmt.Errorf("parse stylemap %s: %w", path, err)
	}
	return sm, nil
}

// ParseStyleMap parses TOML stylemap data
func ParseStyleMap(data []byte) (*StyleMap, error) {
	var file styleMapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	sm := &StyleMap{}

	if file.Default != nil {
		st, err := buildStyle(file.Default.Fg, file.Default.Bg, attrsOf(
			file.Default.Bold, file.Default.Dim, file.Default.Italic,
			file.Default.Underline, file.Default.Blink, file.Default.Reverse))
		if err != nil {
			return nil, fmt.Errorf("default style: %w", err)
		}
		sm.Default = &st
	}

	for i, re := range file.Regions {
		if re.W <= 0 || re.H <= 0 {
			return nil, fmt.Errorf("region %d: non-positive size %dx%d", i, re.W, re.H)
		}
		st, err := buildStyle(re.Fg, re.Bg, attrsOf(
			re.Bold, re.Dim, re.Italic, re.Underline, re.Blink, re.Reverse))
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
		sm.Regions = append(sm.Regions, Region{
			Rect:  core.NewRect(re.X, re.Y, re.W, re.H),
			Style: st,
		})
	}
	return sm, nil
}

func attrsOf(bold, dim, italic, underline, blink, reverse bool) render.Attr {
	var a render.Attr
	if bold {
		a |= terminal.AttrBold
	}
	if dim {
		a |= terminal.AttrDim
	}
	if italic {
		a |= terminal.AttrItalic
	}
	if underline {
		a |= terminal.AttrUnderline
	}
	if blink {
		a |= terminal.AttrBlink
	}
	if reverse {
		a |= terminal.AttrReverse
	}
	return a
}

func buildStyle(fg, bg string, attrs render.Attr) (Style, error) {
	st := Style{Attrs: attrs}
	if fg != "" {
		c, err := render.ParseColor(fg)
		if err != nil {
			return st, err
		}
		st.Fg = c
		st.HasFg = true
	}
	if bg != "" {
		c, err := render.ParseColor(bg)
		if err != nil {
			return st, err
		}
		st.Bg = c
		st.HasBg = true
	}
	return st, nil
}

// Apply paints the stylemap over a grid: default first, then regions in
// order. Transparent cells keep their styles too, so toggling a cell
// opaque later still shows the mapped colors.
func (m *StyleMap) Apply(g *render.Grid) {
	if m.Default != nil {
		all := core.NewRect(0, 0, g.W, g.H)
		applyRegion(g, all, *m.Default)
	}
	for _, re := range m.Regions {
		applyRegion(g, re.Rect, re.Style)
	}
}

func applyRegion(g *render.Grid, r core.Rect, st Style) {
	clipped := r.Intersect(core.NewRect(0, 0, g.W, g.H))
	if clipped.Empty() {
		return
	}
	for y := clipped.Y0; y <= clipped.Y1; y++ {
		for x := clipped.X0; x <= clipped.X1; x++ {
			cell := g.At(x, y)
			if st.HasFg {
				cell.Fg = st.Fg
			}
			if st.HasBg {
				cell.Bg = st.Bg
			}
			cell.Attrs |= st.Attrs
		}
	}
}
