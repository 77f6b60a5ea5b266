package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/termsprite/render"
	"github.com/lixenwraith/termsprite/terminal"
)

// UpdateFunc runs host logic once per tick before the frame is rendered
type UpdateFunc func(w *World, dt time.Duration)

// Loop drives the render pipeline on a fixed tick. Each tick it drains
// pending resize events, runs the host update, snapshots the world, and
// renders exactly one frame. The whole pass is synchronous; render errors
// are reported to the error handler and recovery happens via the
// pipeline's forced-full-redraw path on the following tick.
type Loop struct {
	world *World
	pipe  *render.Pipeline
	term  terminal.Terminal

	tickInterval time.Duration
	update       UpdateFunc
	onError      func(error)

	snapshot []render.Sprite

	tickCount atomic.Uint64

	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

// NewLoop creates a loop rendering the world through the pipeline at the
// given tick interval
func NewLoop(world *World, pipe *render.Pipeline, term terminal.Terminal, interval time.Duration, update UpdateFunc) *Loop {
	return &Loop{
		world:        world,
		pipe:         pipe,
		term:         term,
		tickInterval: interval,
		update:       update,
		snapshot:     make([]render.Sprite, 0, 64),
	}
}

// OnError registers a handler for per-tick render failures.
// Without a handler failures are dropped: the next successful tick
// resynchronizes the screen with a full redraw.
func (l *Loop) OnError(fn func(error)) {
	l.onError = fn
}

// TickCount returns the number of completed ticks
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

// Start launches the loop goroutine. No-op while running; a stopped loop
// can be started again.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return
	}
	l.running = true
	l.stopChan = make(chan struct{})
	l.wg.Add(1)
	go l.run(l.stopChan)
}

// Stop signals the loop to exit and waits for the current tick to finish.
// Safe to call multiple times.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	stop := l.stopChan
	l.mu.Unlock()

	close(stop)
	l.wg.Wait()
}

func (l *Loop) run(stop <-chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return

		case ev := <-l.term.ResizeChan():
			if ev.Width > 0 && ev.Height > 0 {
				l.pipe.Resize(ev.Width, ev.Height)
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			if l.update != nil {
				l.update(l.world, dt)
			}

			l.snapshot = l.world.Snapshot(l.snapshot[:0])
			if err := l.pipe.Tick(l.snapshot); err != nil {
				if l.onError != nil {
					l.onError(err)
				}
			}
			l.tickCount.Add(1)
		}
	}
}
