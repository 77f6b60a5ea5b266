package render

import (
	"github.com/tidwall/rtree"

	"github.com/lixenwraith/termsprite/core"
)

// SpatialEntry is one indexed sprite: its entity, clipped screen bounds,
// and depth. Entries live for a single tick.
type SpatialEntry struct {
	Entity core.Entity
	Bounds core.Rect
	Depth  int64

	idx int // position in the snapshot slice, avoids an entity lookup map
}

// SpatialIndex is an AABB tree over the screen-space rectangles of visible
// sprites. It is bulk-built from the sprite snapshot every tick and
// discarded after compositing; with full-tick sprite churn a rebuild is
// cheaper than incremental maintenance.
type SpatialIndex struct {
	tree rtree.RTreeG[SpatialEntry]
}

// BuildIndex indexes visible sprites whose bounds intersect the screen.
// Bounds are clipped to the screen; sprites fully outside are excluded.
// An empty sprite set yields an empty index.
func BuildIndex(sprites []Sprite, width, height int) *SpatialIndex {
	ix := &SpatialIndex{}
	screen := core.NewRect(0, 0, width, height)

	for i := range sprites {
		s := &sprites[i]
		if !s.Visible || s.Grid == nil {
			continue
		}
		clipped := s.Bounds().Intersect(screen)
		if clipped.Empty() {
			continue
		}
		ix.tree.Insert(
			[2]float64{float64(clipped.X0), float64(clipped.Y0)},
			[2]float64{float64(clipped.X1), float64(clipped.Y1)},
			SpatialEntry{Entity: s.Entity, Bounds: clipped, Depth: s.Depth, idx: i},
		)
	}
	return ix
}

// QueryOverlapping returns the entities whose bounds overlap the region
func (ix *SpatialIndex) QueryOverlapping(region core.Rect) []core.Entity {
	if region.Empty() {
		return nil
	}

	var out []core.Entity
	ix.tree.Search(
		[2]float64{float64(region.X0), float64(region.Y0)},
		[2]float64{float64(region.X1), float64(region.Y1)},
		func(min, max [2]float64, e SpatialEntry) bool {
			out = append(out, e.Entity)
			return true
		},
	)
	return out
}

// entriesOverlapping appends entries overlapping the region to dst,
// reusing its backing array across ticks
func (ix *SpatialIndex) entriesOverlapping(region core.Rect, dst []SpatialEntry) []SpatialEntry {
	if region.Empty() {
		return dst
	}

	ix.tree.Search(
		[2]float64{float64(region.X0), float64(region.Y0)},
		[2]float64{float64(region.X1), float64(region.Y1)},
		func(min, max [2]float64, e SpatialEntry) bool {
			dst = append(dst, e)
			return true
		},
	)
	return dst
}

// Len returns the number of indexed sprites
func (ix *SpatialIndex) Len() int {
	return ix.tree.Len()
}
