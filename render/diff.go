package render

// Run is a maximal contiguous span of changed cells in one row.
// Cells is a view into the current frame buffer, valid for one tick.
type Run struct {
	Row   int
	Col   int
	Cells []Cell
}

// Diff compares current against previous cell by cell and appends
// row-major runs (top-to-bottom, left-to-right) to dst, reusing its
// backing array. force, or a dimension mismatch between the buffers,
// marks every cell dirty: one full-width run per row.
//
// Wide glyphs are diffed as a unit: a run never begins at a continuation
// cell (the owner is pulled in) and never ends between an owner and its
// continuation.
func Diff(previous, current *FrameBuffer, force bool, dst []Run) []Run {
	if force ||
		previous.width != current.width ||
		previous.height != current.height {
		if current.width == 0 {
			return dst
		}
		for y := 0; y < current.height; y++ {
			dst = append(dst, Run{Row: y, Col: 0, Cells: current.row(y)})
		}
		return dst
	}

	for y := 0; y < current.height; y++ {
		prow := previous.row(y)
		crow := current.row(y)

		x := 0
		for x < current.width {
			if visualEqual(&crow[x], &prow[x]) {
				x++
				continue
			}

			start := x
			if crow[x].IsContinuation() && start > 0 {
				start--
			}

			end := x + 1
			for end < current.width && !visualEqual(&crow[end], &prow[end]) {
				end++
			}
			if end < current.width && crow[end].IsContinuation() {
				end++
			}

			dst = append(dst, Run{Row: y, Col: start, Cells: crow[start:end]})
			x = end
		}
	}
	return dst
}
