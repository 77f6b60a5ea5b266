package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Rect is an axis-aligned bounding box with inclusive corners
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// NewRect builds a rect from a top-left corner and a size.
// A zero or negative size yields an empty rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X0: x, Y0: y, X1: x + w - 1, Y1: y + h - 1}
}

// Empty returns true if the rect covers no cells
func (r Rect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// Width returns the number of columns covered
func (r Rect) Width() int {
	if r.Empty() {
		return 0
	}
	return r.X1 - r.X0 + 1
}

// Height returns the number of rows covered
func (r Rect) Height() int {
	if r.Empty() {
		return 0
	}
	return r.Y1 - r.Y0 + 1
}

// Contains returns true if (x, y) falls inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Intersects returns true if the two rects share at least one cell
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X0 <= o.X1 && r.X1 >= o.X0 && r.Y0 <= o.Y1 && r.Y1 >= o.Y0
}

// Intersect clips r to o. The result is empty when they do not overlap
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	return out
}
