// Demo: depth-ordered sprites bouncing around the terminal, composited and
// flushed through the diff pipeline every tick.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/termsprite/config"
	"github.com/lixenwraith/termsprite/core"
	"github.com/lixenwraith/termsprite/engine"
	"github.com/lixenwraith/termsprite/render"
	"github.com/lixenwraith/termsprite/terminal"
)

const boxArt = `+------+
|      |
|      |
+------+`

const blobArt = ` ###
#####
 ### `

const starArt = `日本`

type velocity struct {
	dx, dy int
}

func main() {
	defer core.Recover()

	configPath := flag.String("config", "", "path to TOML config file")
	useTcell := flag.Bool("tcell", false, "render through tcell instead of the ANSI backend")
	count := flag.Int("sprites", 12, "number of bouncing sprites")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	bg, _ := cfg.BackgroundRGB()

	var term terminal.Terminal
	if *useTcell {
		term = terminal.NewTcell()
	} else if mode, ok := cfg.TerminalColorMode(); ok {
		term = terminal.New(mode)
	} else {
		term = terminal.New()
	}

	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()
	term.SetCursorVisible(!cfg.HideCursor)

	world := engine.NewWorld()
	vels := spawnSprites(world, term, cfg, *count)

	pipe := render.NewPipeline(term, bg)

	update := func(w *engine.World, dt time.Duration) {
		width, height := term.Size()
		for e, v := range vels {
			pos, ok := w.Positions.Get(e)
			if !ok {
				continue
			}
			sc, _ := w.Sprites.Get(e)

			nx := pos.X + v.dx
			ny := pos.Y + v.dy
			if nx < -sc.Grid.W || nx > width {
				v.dx = -v.dx
				nx = pos.X + v.dx
			}
			if ny < -sc.Grid.H || ny > height {
				v.dy = -v.dy
				ny = pos.Y + v.dy
			}
			vels[e] = v
			w.MoveTo(e, nx, ny)
		}
	}

	loop := engine.NewLoop(world, pipe, term, time.Second/time.Duration(cfg.TickRate), update)
	loop.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	loop.Stop()
	term.Fini()
	fmt.Printf("rendered %d frames\n", loop.TickCount())
}

// spawnSprites populates the world with overlapping sprites at distinct
// depths and returns their velocities
func spawnSprites(world *engine.World, term terminal.Terminal, cfg config.Config, count int) map[core.Entity]velocity {
	width, height := term.Size()
	transparent := cfg.TransparentRune()

	box := render.NewGridFromText(boxArt, render.TextOptions{
		Transparent: transparent,
		Fg:          render.RGB{R: 0x7a, G: 0xa2, B: 0xf7},
	})
	blob := render.NewGridFromText(blobArt, render.TextOptions{
		Transparent: transparent,
		Fg:          render.RGB{R: 0xf7, G: 0x76, B: 0x8e},
		Bg:          render.RGB{R: 0x20, G: 0x20, B: 0x30},
	})
	star := render.NewGridFromText(starArt, render.TextOptions{
		Transparent: transparent,
		Fg:          render.RGB{R: 0xe0, G: 0xaf, B: 0x68},
	})
	grids := []*render.Grid{box, blob, star}

	vels := make(map[core.Entity]velocity, count)
	for i := 0; i < count; i++ {
		grid := grids[i%len(grids)]
		x := rand.Intn(max(width-grid.W, 1))
		y := rand.Intn(max(height-grid.H, 1))
		e := world.Spawn(grid, x, y, int64(i))

		v := velocity{dx: 1 - 2*rand.Intn(2), dy: 1 - 2*rand.Intn(2)}
		vels[e] = v
	}
	return vels
}
