// Package config loads engine settings from a TOML file with sane defaults.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/termsprite/render"
	"github.com/lixenwraith/termsprite/terminal"
)

// Config holds engine settings
type Config struct {
	TickRate    int    `toml:"tick_rate"`   // frames per second
	ColorMode   string `toml:"color_mode"`  // "auto", "256", "truecolor"
	Background  string `toml:"background"`  // hex color, e.g. "#1a1b26"
	Transparent string `toml:"transparent"` // rune treated as transparent in text sprites
	HideCursor  bool   `toml:"hide_cursor"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickRate:    20,
		ColorMode:   "auto",
		Background:  "#000000",
		Transparent: " ",
		HideCursor:  true,
	}
}

// Load reads a TOML config file over the defaults.
// A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("config %s: tick_rate must be positive, got %d", path, cfg.TickRate)
	}
	if _, err := cfg.BackgroundRGB(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// BackgroundRGB parses the background color
func (c Config) BackgroundRGB() (render.RGB, error) {
	return render.ParseColor(c.Background)
}

// TransparentRune returns the transparency rune for text sprites, 0 if unset
func (c Config) TransparentRune() rune {
	if c.Transparent == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Transparent)
	return r
}

// TerminalColorMode maps the config string to a terminal color mode.
// "auto" and unknown values defer to environment detection.
func (c Config) TerminalColorMode() (terminal.ColorMode, bool) {
	switch c.ColorMode {
	case "256":
		return terminal.ColorMode256, true
	case "truecolor":
		return terminal.ColorModeTrueColor, true
	default:
		return 0, false
	}
}
