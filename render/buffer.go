package render

// FrameBuffer is a fixed-size row-major grid of Cells representing one
// fully rendered frame. Two instances are kept by the pipeline (previous,
// current); current is rebuilt from scratch every tick so no stale cells
// survive across frames.
type FrameBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewFrameBuffer creates a buffer with the specified dimensions,
// cleared to the given background
func NewFrameBuffer(width, height int, bg RGB) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &FrameBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear(bg)
	return b
}

// Width returns the buffer width in columns
func (b *FrameBuffer) Width() int { return b.width }

// Height returns the buffer height in rows
func (b *FrameBuffer) Height() int { return b.height }

// Resize adjusts buffer dimensions, reallocating only if capacity is
// insufficient, and clears to the given background
func (b *FrameBuffer) Resize(width, height int, bg RGB) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(bg)
}

// Clear resets all cells to empty using exponential copy
func (b *FrameBuffer) Clear(bg RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell(bg)
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if (x, y) is inside the buffer
func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns a copy of the cell at (x, y); the zero Cell if out of bounds
func (b *FrameBuffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// at returns a pointer to the cell at (x, y); callers must bounds-check
func (b *FrameBuffer) at(x, y int) *Cell {
	return &b.cells[y*b.width+x]
}

// row returns the cell slice for one row
func (b *FrameBuffer) row(y int) []Cell {
	start := y * b.width
	return b.cells[start : start+b.width]
}
