package terminal

import (
	"testing"
)

func TestRGBTo256Extremes(t *testing.T) {
	if got := RGBTo256(RGB{}); got != 16 {
		t.Errorf("Expected black to map to cube 16, got %d", got)
	}
	if got := RGBTo256(RGB{R: 255, G: 255, B: 255}); got != 231 {
		t.Errorf("Expected white to map to cube 231, got %d", got)
	}
}

func TestRGBTo256PrimaryColors(t *testing.T) {
	cases := []struct {
		c    RGB
		want uint8
	}{
		{RGB{R: 255}, 196},
		{RGB{G: 255}, 46},
		{RGB{B: 255}, 21},
	}
	for _, tc := range cases {
		if got := RGBTo256(tc.c); got != tc.want {
			t.Errorf("RGBTo256(%+v): expected %d, got %d", tc.c, tc.want, got)
		}
	}
}

func TestRGBTo256Grayscale(t *testing.T) {
	// Mid gray lands on the grayscale ramp, not the coarse cube
	got := RGBTo256(RGB{R: 128, G: 128, B: 128})
	if got < grayscaleStart {
		t.Errorf("Expected grayscale ramp index for mid gray, got %d", got)
	}
}

func TestRGBTo256NearGrayPrefersCloserMatch(t *testing.T) {
	// 95,95,95 is an exact cube level; the ramp cannot beat distance zero
	if got := RGBTo256(RGB{R: 95, G: 95, B: 95}); got != 16+36+6+1 {
		t.Errorf("Expected exact cube gray 59, got %d", got)
	}
}

func TestDetectColorMode(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"bare 256-color terminal", nil, ColorMode256},
		{"COLORTERM truecolor", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"COLORTERM 24bit", map[string]string{"COLORTERM": "24bit"}, ColorModeTrueColor},
		{"unrecognized COLORTERM", map[string]string{"COLORTERM": "yes"}, ColorMode256},
		{"known emulator env", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"TERM direct hint", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("COLORTERM", "")
			t.Setenv("TERM", "xterm-256color")
			for _, name := range trueColorEnvHints {
				t.Setenv(name, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := DetectColorMode(); got != tc.want {
				t.Errorf("Expected mode %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRGBEqual(t *testing.T) {
	a := RGB{R: 1, G: 2, B: 3}
	if !a.Equal(RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("Expected equal colors")
	}
	if a.Equal(RGB{R: 1, G: 2, B: 4}) {
		t.Errorf("Expected unequal colors")
	}
}
