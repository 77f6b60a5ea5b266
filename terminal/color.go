package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// Emulators that render 24-bit color but don't always say so in COLORTERM
var trueColorEnvHints = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"ALACRITTY_LOG",
	"WEZTERM_PANE",
}

// TERM substrings that advertise direct-color support
var trueColorTermHints = []string{"truecolor", "24bit", "direct"}

// DetectColorMode infers color capability from the environment.
// COLORTERM is checked first as the most reliable signal, then known
// truecolor emulators, then TERM itself. Anything unrecognized falls
// back to the 256-color palette.
func DetectColorMode() ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	for _, name := range trueColorEnvHints {
		if os.Getenv(name) != "" {
			return ColorModeTrueColor
		}
	}
	term := os.Getenv("TERM")
	for _, hint := range trueColorTermHints {
		if strings.Contains(term, hint) {
			return ColorModeTrueColor
		}
	}
	return ColorMode256
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5, pre-computed at init
var cubeIndex [256]uint8

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts RGB to the nearest 256-color palette index.
// Near-grayscale values are matched against the 24-step gray ramp when it
// beats the color cube; everything else uses the 6x6x6 cube directly.
func RGBTo256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(abs(int(c.R)-gray), abs(int(c.G)-gray), abs(int(c.B)-gray))

	cubeR := cubeIndex[c.R]
	cubeG := cubeIndex[c.G]
	cubeB := cubeIndex[c.B]
	cube := 16 + 36*cubeR + 6*cubeG + cubeB

	if maxDiff >= 10 {
		return cube
	}

	// Close to grayscale: ramp levels are 8, 18, ..., 238
	if gray < 4 {
		return 16 // cube black
	}
	if gray > 243 {
		return 231 // cube white
	}
	grayIdx := uint8(grayscaleStart + (gray-8)/10)

	grayLevel := 8 + int(grayIdx-grayscaleStart)*10
	grayDist := abs(int(c.R)-grayLevel) + abs(int(c.G)-grayLevel) + abs(int(c.B)-grayLevel)
	cubeDist := abs(int(c.R)-int(cubeValues[cubeR])) +
		abs(int(c.G)-int(cubeValues[cubeG])) +
		abs(int(c.B)-int(cubeValues[cubeB]))

	if grayDist < cubeDist {
		return grayIdx
	}
	return cube
}
