package render

import (
	"github.com/lixenwraith/termsprite/terminal"
)

// Serializer turns diff runs into a terminal op stream. Style and cursor
// position are tracked across the whole sequence so a style op is emitted
// only when the running state actually changes, and a cursor move is
// skipped when a run starts where the previous write ended.
//
// State does not persist across frames: the terminal resets attributes at
// the end of every applied sequence.
type Serializer struct {
	lastFg    RGB
	lastBg    RGB
	lastAttrs Attr
	lastValid bool

	curX, curY  int
	cursorValid bool

	ops  []terminal.Op
	text []byte
}

// NewSerializer creates a serializer with reusable scratch buffers
func NewSerializer() *Serializer {
	return &Serializer{
		ops:  make([]terminal.Op, 0, 128),
		text: make([]byte, 0, 256),
	}
}

// Serialize converts runs (already row-major ordered) into ops.
// The returned slice is reused on the next call.
func (s *Serializer) Serialize(runs []Run) []terminal.Op {
	s.ops = s.ops[:0]
	s.lastValid = false
	s.cursorValid = false

	for ri := range runs {
		run := &runs[ri]

		if !s.cursorValid || s.curY != run.Row || s.curX != run.Col {
			s.ops = append(s.ops, terminal.MoveCursor(run.Col, run.Row))
			s.curX, s.curY = run.Col, run.Row
			s.cursorValid = true
		}

		s.serializeRun(run)
	}
	return s.ops
}

// serializeRun emits style-grouped text spans for one run.
// Continuation cells contribute nothing: their owner's glyph already
// covers both columns.
func (s *Serializer) serializeRun(run *Run) {
	i := 0
	for i < len(run.Cells) {
		c := &run.Cells[i]
		if c.IsContinuation() {
			i++
			continue
		}

		fg, bg, attrs := c.Fg, c.Bg, c.Attrs
		if !s.lastValid || fg != s.lastFg || bg != s.lastBg || attrs != s.lastAttrs {
			s.ops = append(s.ops, terminal.SetStyle(fg, bg, attrs))
			s.lastFg, s.lastBg, s.lastAttrs = fg, bg, attrs
			s.lastValid = true
		}

		s.text = s.text[:0]
		for i < len(run.Cells) {
			c = &run.Cells[i]
			if c.IsContinuation() {
				i++
				continue
			}
			if c.Fg != fg || c.Bg != bg || c.Attrs != attrs {
				break
			}
			if c.Glyph == "" {
				s.text = append(s.text, ' ')
			} else {
				s.text = append(s.text, c.Glyph...)
			}
			s.curX += int(c.Width)
			i++
		}
		s.ops = append(s.ops, terminal.WriteText(string(s.text)))
	}
}
