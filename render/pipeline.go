package render

import (
	"fmt"

	"github.com/lixenwraith/termsprite/terminal"
)

// Pipeline owns the double-buffered frame state and drives one render pass
// per tick: spatial index build, compose, diff, serialize, apply, swap.
// It holds exclusive ownership of both frame buffers; nothing outside the
// pipeline mutates them.
type Pipeline struct {
	term terminal.Terminal
	comp *Compositor
	ser  *Serializer

	previous *FrameBuffer
	current  *FrameBuffer

	runs  []Run
	force bool
}

// NewPipeline creates a pipeline writing to term, clearing to bg.
// The first tick performs a full redraw.
func NewPipeline(term terminal.Terminal, bg RGB) *Pipeline {
	w, h := term.Size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Pipeline{
		term:     term,
		comp:     NewCompositor(bg),
		ser:      NewSerializer(),
		previous: NewFrameBuffer(w, h, bg),
		current:  NewFrameBuffer(w, h, bg),
		runs:     make([]Run, 0, 64),
		force:    true,
	}
}

// ForceRedraw marks the next tick as a full redraw. Used after external
// interference with the terminal or as failure recovery.
func (p *Pipeline) ForceRedraw() {
	p.force = true
}

// Resize invalidates both buffers for the new dimensions and forces a
// full redraw on the next tick
func (p *Pipeline) Resize(width, height int) {
	bg := p.comp.Background()
	p.previous.Resize(width, height, bg)
	p.current.Resize(width, height, bg)
	p.force = true
}

// Size returns the pipeline's current buffer dimensions
func (p *Pipeline) Size() (int, int) {
	return p.current.Width(), p.current.Height()
}

// Tick renders one frame from the sprite snapshot. The snapshot is
// read-only; overlap between sprites is expected and resolved by depth
// order, never an error. Only boundary failures surface: bad terminal
// dimensions skip the tick, a device write failure is returned and the
// next tick resynchronizes with a forced full redraw.
func (p *Pipeline) Tick(sprites []Sprite) error {
	w, h := p.term.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	if w != p.current.Width() || h != p.current.Height() {
		p.Resize(w, h)
	}

	ix := BuildIndex(sprites, w, h)
	p.comp.Compose(p.current, ix, sprites)

	p.runs = Diff(p.previous, p.current, p.force, p.runs[:0])
	ops := p.ser.Serialize(p.runs)

	if p.force {
		// Physical screen content is unknown; clear before replaying the frame
		if err := p.term.Clear(p.comp.Background()); err != nil {
			return fmt.Errorf("%w: %v", ErrDeviceWrite, err)
		}
	}

	if len(ops) > 0 {
		if err := p.term.Apply(ops); err != nil {
			p.force = true
			return fmt.Errorf("%w: %v", ErrDeviceWrite, err)
		}
	}

	p.previous, p.current = p.current, p.previous
	p.force = false
	return nil
}
