package engine

import (
	"testing"

	"github.com/lixenwraith/termsprite/render"
)

func testGrid() *render.Grid {
	return render.NewGridFromText("##", render.TextOptions{})
}

func TestWorldSpawn(t *testing.T) {
	w := NewWorld()

	e := w.Spawn(testGrid(), 3, 4, 2)

	pos, ok := w.Positions.Get(e)
	if !ok || pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected position (3, 4), got %+v ok=%v", pos, ok)
	}
	sc, ok := w.Sprites.Get(e)
	if !ok || sc.Depth != 2 || !sc.Visible {
		t.Errorf("Expected visible sprite at depth 2, got %+v ok=%v", sc, ok)
	}
}

func TestWorldEntityIDsUnique(t *testing.T) {
	w := NewWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b {
		t.Errorf("Expected distinct entity ids, got %d twice", a)
	}
}

func TestWorldDestroy(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(testGrid(), 0, 0, 0)

	w.Destroy(e)

	if w.Positions.Has(e) || w.Sprites.Has(e) {
		t.Error("Expected components removed on destroy")
	}
	if snap := w.Snapshot(nil); len(snap) != 0 {
		t.Errorf("Expected empty snapshot after destroy, got %d", len(snap))
	}
}

func TestWorldSetVisible(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(testGrid(), 0, 0, 0)

	w.SetVisible(e, false)

	snap := w.Snapshot(nil)
	if len(snap) != 1 {
		t.Fatalf("Expected hidden sprite still in snapshot, got %d", len(snap))
	}
	if snap[0].Visible {
		t.Error("Expected sprite hidden")
	}
}

func TestWorldMoveTo(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(testGrid(), 0, 0, 0)

	w.MoveTo(e, 9, 8)

	pos, _ := w.Positions.Get(e)
	if pos.X != 9 || pos.Y != 8 {
		t.Errorf("Expected (9, 8), got (%d, %d)", pos.X, pos.Y)
	}
}

func TestWorldSnapshotOrdering(t *testing.T) {
	w := NewWorld()
	g := testGrid()

	// Spawn out of order relative to ids via destroy/respawn churn
	a := w.Spawn(g, 0, 0, 0)
	b := w.Spawn(g, 1, 0, 0)
	c := w.Spawn(g, 2, 0, 0)
	w.Destroy(b)
	d := w.Spawn(g, 3, 0, 0)

	snap := w.Snapshot(nil)
	if len(snap) != 3 {
		t.Fatalf("Expected 3 sprites, got %d", len(snap))
	}
	ids := []uint64{uint64(a), uint64(c), uint64(d)}
	for i, s := range snap {
		if uint64(s.Entity) != ids[i] {
			t.Errorf("Expected snapshot ordered by id: index %d expected %d, got %d",
				i, ids[i], s.Entity)
		}
	}
}

func TestWorldSnapshotSkipsPositionless(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Sprites.Set(e, SpriteComponent{Grid: testGrid(), Visible: true})

	if snap := w.Snapshot(nil); len(snap) != 0 {
		t.Errorf("Expected sprite without position skipped, got %d", len(snap))
	}
}
