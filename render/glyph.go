package render

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the terminal column width of a grapheme cluster:
// 0 (combining/zero-width), 1, or 2. Clusters whose computed width exceeds
// two columns (some emoji ZWJ sequences) are clamped to 2; a cluster with
// no defined width defaults to 1 rather than failing, per the best-effort
// rendering policy.
func DisplayWidth(cluster string) int {
	if cluster == "" {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	if w > widthWide {
		return widthWide
	}
	if w < 0 {
		return widthNarrow
	}
	return w
}

// cellWidth maps a cluster to the width stored in a Cell. Unlike
// DisplayWidth it never returns 0: a zero-width cluster still occupies one
// buffer cell when composited.
func cellWidth(cluster string) uint8 {
	if DisplayWidth(cluster) == widthWide {
		return widthWide
	}
	return widthNarrow
}

// Graphemes splits s into grapheme clusters in order
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}

	out := make([]string, 0, len(s))
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}
