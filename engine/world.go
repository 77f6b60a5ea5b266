package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/termsprite/core"
	"github.com/lixenwraith/termsprite/render"
)

// Position is an entity's top-left screen coordinate
type Position struct {
	X, Y int
}

// SpriteComponent attaches a glyph grid, stacking depth, and visibility
// to an entity. The grid is shared, never mutated after creation.
type SpriteComponent struct {
	Grid    *render.Grid
	Depth   int64
	Visible bool
}

// World contains all entities and their components using typed stores.
// It is the host side of the render boundary: each tick it produces an
// immutable sprite snapshot the pipeline consumes.
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Positions *Store[Position]
	Sprites   *Store[SpriteComponent]

	scratch []core.Entity
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Positions:    NewStore[Position](),
		Sprites:      NewStore[SpriteComponent](),
	}
}

// CreateEntity reserves a new entity id
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Spawn creates an entity with a sprite at the given position
func (w *World) Spawn(grid *render.Grid, x, y int, depth int64) core.Entity {
	e := w.CreateEntity()
	w.Positions.Set(e, Position{X: x, Y: y})
	w.Sprites.Set(e, SpriteComponent{Grid: grid, Depth: depth, Visible: true})
	return e
}

// Destroy removes an entity and its components
func (w *World) Destroy(e core.Entity) {
	w.Positions.Remove(e)
	w.Sprites.Remove(e)
}

// SetVisible toggles an entity's sprite visibility
func (w *World) SetVisible(e core.Entity, visible bool) {
	if sc, ok := w.Sprites.Get(e); ok {
		sc.Visible = visible
		w.Sprites.Set(e, sc)
	}
}

// MoveTo repositions an entity
func (w *World) MoveTo(e core.Entity, x, y int) {
	w.Positions.Set(e, Position{X: x, Y: y})
}

// Snapshot appends a read-only sprite snapshot for the current tick to
// dst and returns it. Entities without a position are skipped. The
// snapshot is ordered by entity id so identical world state always yields
// an identical snapshot.
func (w *World) Snapshot(dst []render.Sprite) []render.Sprite {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.scratch = w.Sprites.Entities(w.scratch[:0])
	sort.Slice(w.scratch, func(i, j int) bool { return w.scratch[i] < w.scratch[j] })

	for _, e := range w.scratch {
		sc, ok := w.Sprites.Get(e)
		if !ok {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		dst = append(dst, render.Sprite{
			Entity:  e,
			X:       pos.X,
			Y:       pos.Y,
			Depth:   sc.Depth,
			Visible: sc.Visible,
			Grid:    sc.Grid,
		})
	}
	return dst
}
