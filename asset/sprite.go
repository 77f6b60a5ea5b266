// Package asset loads sprite glyph grids and stylemaps from disk.
// Sprites are plain text files, one grid row per line; stylemaps are TOML
// files assigning colors and attributes to rectangular regions of a grid.
package asset

import (
	"fmt"
	"os"

	"github.com/lixenwraith/termsprite/render"
)

// LoadSprite reads a plain-text sprite file into a glyph grid
func LoadSprite(path string, opts render.TextOptions) (*render.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sprite %s: %w", path, err)
	}
	return render.NewGridFromText(string(data), opts), nil
}

// LoadStyledSprite reads a sprite file and applies the stylemap at
// stylePath over it. An empty stylePath loads the sprite unstyled.
func LoadStyledSprite(spritePath, stylePath string, opts render.TextOptions) (*render.Grid, error) {
	grid, err := LoadSprite(spritePath, opts)
	if err != nil {
		return nil, err
	}
	if stylePath == "" {
		return grid, nil
	}

	sm, err := LoadStyleMap(stylePath)
	if err != nil {
		return nil, err
	}
	sm.Apply(grid)
	return grid, nil
}
