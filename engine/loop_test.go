package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/termsprite/render"
	"github.com/lixenwraith/termsprite/terminal"
)

// loopTerm is a fixed-size in-memory terminal for loop tests
type loopTerm struct {
	mu            sync.Mutex
	width, height int
	resizeCh      chan terminal.ResizeEvent
}

func newLoopTerm(w, h int) *loopTerm {
	return &loopTerm{width: w, height: h, resizeCh: make(chan terminal.ResizeEvent, 1)}
}

func (t *loopTerm) Init() error { return nil }

func (t *loopTerm) Fini() {}

func (t *loopTerm) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

func (t *loopTerm) ResizeChan() <-chan terminal.ResizeEvent { return t.resizeCh }

func (t *loopTerm) ColorMode() terminal.ColorMode { return terminal.ColorModeTrueColor }

func (t *loopTerm) Apply(ops []terminal.Op) error { return nil }

func (t *loopTerm) Clear(bg terminal.RGB) error { return nil }

func (t *loopTerm) SetCursorVisible(bool) {}

func TestLoopTicksAndStops(t *testing.T) {
	term := newLoopTerm(20, 5)
	world := NewWorld()
	world.Spawn(render.NewGridFromText("##", render.TextOptions{}), 0, 0, 0)

	pipe := render.NewPipeline(term, render.RGB{})

	var updates int
	loop := NewLoop(world, pipe, term, time.Millisecond, func(w *World, dt time.Duration) {
		updates++
	})

	loop.Start()
	time.Sleep(50 * time.Millisecond)
	loop.Stop()

	if loop.TickCount() == 0 {
		t.Error("Expected ticks to advance")
	}
	if updates == 0 {
		t.Error("Expected update callback to run")
	}

	// Stop is idempotent and the loop stays stopped
	loop.Stop()
	count := loop.TickCount()
	time.Sleep(10 * time.Millisecond)
	if loop.TickCount() != count {
		t.Error("Expected no ticks after stop")
	}
}

func TestLoopStartIdempotent(t *testing.T) {
	term := newLoopTerm(20, 5)
	pipe := render.NewPipeline(term, render.RGB{})
	loop := NewLoop(NewWorld(), pipe, term, time.Millisecond, nil)

	loop.Start()
	loop.Start() // second call must not spawn another goroutine
	time.Sleep(10 * time.Millisecond)
	loop.Stop()
}

func TestLoopRestart(t *testing.T) {
	term := newLoopTerm(20, 5)
	pipe := render.NewPipeline(term, render.RGB{})
	loop := NewLoop(NewWorld(), pipe, term, time.Millisecond, nil)

	loop.Start()
	time.Sleep(20 * time.Millisecond)
	loop.Stop()
	count := loop.TickCount()
	if count == 0 {
		t.Fatal("Expected ticks before stop")
	}

	// A stopped loop must start again and keep ticking
	loop.Start()
	deadline := time.Now().Add(time.Second)
	for loop.TickCount() == count && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	loop.Stop()

	if loop.TickCount() == count {
		t.Error("Expected ticks to resume after restart")
	}
}

func TestLoopReportsRenderErrors(t *testing.T) {
	// Zero-width terminal makes every tick fail with a dimension error
	term := newLoopTerm(0, 5)
	pipe := render.NewPipeline(term, render.RGB{})
	loop := NewLoop(NewWorld(), pipe, term, time.Millisecond, nil)

	errCh := make(chan error, 1)
	loop.OnError(func(err error) {
		select {
		case errCh <- err:
		default:
		}
	})

	loop.Start()
	defer loop.Stop()

	select {
	case err := <-errCh:
		if err == nil {
			t.Error("Expected non-nil render error")
		}
	case <-time.After(time.Second):
		t.Error("Expected render error to be reported")
	}
}

func TestLoopAppliesResize(t *testing.T) {
	term := newLoopTerm(20, 5)
	pipe := render.NewPipeline(term, render.RGB{})
	loop := NewLoop(NewWorld(), pipe, term, time.Millisecond, nil)

	loop.Start()

	term.mu.Lock()
	term.width, term.height = 40, 10
	term.mu.Unlock()
	term.resizeCh <- terminal.ResizeEvent{Width: 40, Height: 10}

	time.Sleep(50 * time.Millisecond)
	loop.Stop()

	if w, h := pipe.Size(); w != 40 || h != 10 {
		t.Errorf("Expected pipeline resized to 40x10, got %dx%d", w, h)
	}
}
