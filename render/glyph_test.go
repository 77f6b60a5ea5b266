package render

import (
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		cluster string
		want    int
	}{
		{"", 0},
		{"A", 1},
		{" ", 1},
		{"é", 1},  // precomposed e-acute
		{"é", 1}, // e + combining acute
		{"́", 0},  // bare combining mark
		{"日", 2},  // CJK ideograph
		{"ｱ", 1},  // halfwidth katakana
		{"Ａ", 2},  // fullwidth latin A
		{"​", 0},  // zero-width space
	}

	for _, c := range cases {
		if got := DisplayWidth(c.cluster); got != c.want {
			t.Errorf("DisplayWidth(%q): expected %d, got %d", c.cluster, c.want, got)
		}
	}
}

func TestCellWidthNeverZero(t *testing.T) {
	// Zero-width clusters still occupy one composited cell
	if got := cellWidth("́"); got != widthNarrow {
		t.Errorf("Expected zero-width cluster to map to narrow cell, got %d", got)
	}
	if got := cellWidth("​"); got != widthNarrow {
		t.Errorf("Expected zero-width space to map to narrow cell, got %d", got)
	}
	if got := cellWidth("A"); got != widthNarrow {
		t.Errorf("Expected narrow cell, got %d", got)
	}
	if got := cellWidth("日"); got != widthWide {
		t.Errorf("Expected CJK cluster to map to wide cell, got %d", got)
	}
}

func TestGraphemes(t *testing.T) {
	got := Graphemes("ab日")
	want := []string{"a", "b", "日"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d clusters, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cluster %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	// Combining sequence stays one cluster
	got = Graphemes("éx")
	if len(got) != 2 || got[0] != "é" {
		t.Errorf("Expected combining sequence as one cluster, got %v", got)
	}

	if Graphemes("") != nil {
		t.Errorf("Expected nil for empty string")
	}
}
