// Benchmark: measures compose/diff/serialize throughput of the render
// pipeline against a discarding terminal, without a real device in the way.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/termsprite/core"
	"github.com/lixenwraith/termsprite/render"
	"github.com/lixenwraith/termsprite/terminal"
)

// nullTerm is a fixed-size terminal that discards every op stream.
// Keeps the measurement on the pipeline, not the device.
type nullTerm struct {
	width, height int
	resizeCh      chan terminal.ResizeEvent
	opsApplied    int
	bytesText     int
}

func (t *nullTerm) Init() error { return nil }

func (t *nullTerm) Fini() {}

func (t *nullTerm) Size() (int, int) { return t.width, t.height }

func (t *nullTerm) ResizeChan() <-chan terminal.ResizeEvent { return t.resizeCh }

func (t *nullTerm) ColorMode() terminal.ColorMode { return terminal.ColorModeTrueColor }

func (t *nullTerm) Apply(ops []terminal.Op) error {
	t.opsApplied += len(ops)
	for i := range ops {
		t.bytesText += len(ops[i].Text)
	}
	return nil
}

func (t *nullTerm) Clear(bg terminal.RGB) error { return nil }

func (t *nullTerm) SetCursorVisible(bool) {}

func main() {
	width := flag.Int("width", 200, "frame width in columns")
	height := flag.Int("height", 60, "frame height in rows")
	sprites := flag.Int("sprites", 200, "sprite count")
	frames := flag.Int("frames", 2000, "frames to render")
	seed := flag.Int64("seed", 1, "position rng seed")
	flag.Parse()

	term := &nullTerm{
		width:    *width,
		height:   *height,
		resizeCh: make(chan terminal.ResizeEvent),
	}

	rng := rand.New(rand.NewSource(*seed))
	scene := buildScene(rng, *width, *height, *sprites)

	pipe := render.NewPipeline(term, render.RGB{})

	start := time.Now()
	for f := 0; f < *frames; f++ {
		// Shift a quarter of the sprites each frame to exercise the diff path
		for i := 0; i < len(scene); i += 4 {
			scene[i].X = (scene[i].X + 1) % *width
		}
		if err := pipe.Tick(scene); err != nil {
			fmt.Printf("tick %d: %v\n", f, err)
			return
		}
	}
	elapsed := time.Since(start)

	cells := *width * *height * *frames
	fmt.Printf("%d frames %dx%d, %d sprites\n", *frames, *width, *height, *sprites)
	fmt.Printf("elapsed:      %v\n", elapsed)
	fmt.Printf("frame time:   %v\n", elapsed/time.Duration(*frames))
	fmt.Printf("cells/sec:    %.0f\n", float64(cells)/elapsed.Seconds())
	fmt.Printf("ops applied:  %d\n", term.opsApplied)
	fmt.Printf("text bytes:   %d\n", term.bytesText)
}

func buildScene(rng *rand.Rand, width, height, count int) []render.Sprite {
	art := []string{
		"####\n####",
		"+--+\n|..|\n+--+",
		"@@",
		"日本\n語語",
	}
	grids := make([]*render.Grid, len(art))
	for i, a := range art {
		grids[i] = render.NewGridFromText(a, render.TextOptions{
			Transparent: '.',
			Fg:          render.RGB{R: uint8(40 * i), G: 200, B: uint8(255 - 40*i)},
		})
	}

	scene := make([]render.Sprite, count)
	for i := range scene {
		g := grids[i%len(grids)]
		scene[i] = render.Sprite{
			Entity:  core.Entity(i + 1),
			X:       rng.Intn(width),
			Y:       rng.Intn(height),
			Depth:   int64(i % 8),
			Visible: true,
			Grid:    g,
		}
	}
	return scene
}
