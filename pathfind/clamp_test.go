package pathfind

import (
	"slices"
	"testing"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

func TestClampPathPartialBudget(t *testing.T) {
	// Edge costs along the row: 1, 1, 3 (mountain), 1. A budget of 2.5
	// covers the first two steps and stops short of the mountain.
	g := model.NewGrid(model.Rectangular, 5)
	if err := g.SetTerrain(model.Coord{Q: 3, R: 0}, model.Mountain); err != nil {
		t.Fatalf("SetTerrain: %v", err)
	}
	f := NewFinder(g)
	u := landUnit(10)

	full := model.Path{
		{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 3, R: 0}, {Q: 4, R: 0},
	}
	got := f.ClampPath(full, u, 2.5)
	want := model.Path{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}}
	if !slices.Equal(got, want) {
		t.Errorf("clamped path = %v, want %v", got, want)
	}
	if cost := f.PathCost(got, u); !approx(cost, 2) {
		t.Errorf("clamped path cost = %v, want 2", cost)
	}
}

func TestClampPathFullBudget(t *testing.T) {
	g := model.NewGrid(model.Rectangular, 5)
	f := NewFinder(g)
	u := landUnit(10)

	full := model.Path{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}}
	got := f.ClampPath(full, u, 10)
	if !slices.Equal(got, full) {
		t.Errorf("clamp under a generous budget = %v, want the full path %v", got, full)
	}
}

func TestClampPathFirstStepTooExpensive(t *testing.T) {
	g := model.NewGrid(model.Rectangular, 3)
	if err := g.SetTerrain(model.Coord{Q: 1, R: 0}, model.Mountain); err != nil {
		t.Fatalf("SetTerrain: %v", err)
	}
	f := NewFinder(g)

	full := model.Path{{Q: 0, R: 0}, {Q: 1, R: 0}}
	got := f.ClampPath(full, landUnit(10), 2)
	if len(got) != 1 || got[0] != (model.Coord{Q: 0, R: 0}) {
		t.Errorf("clamped path = %v, want just the starting tile", got)
	}
}

func TestClampPathStopsAtBlockedEdge(t *testing.T) {
	// An enemy moved onto the committed route since it was planned; the
	// clamp halts before the now-infinite edge even with budget to spare.
	g := model.NewGrid(model.Rectangular, 4)
	if err := g.PlaceOccupant(model.Coord{Q: 2, R: 0}, 7, "blue"); err != nil {
		t.Fatalf("PlaceOccupant: %v", err)
	}
	f := NewFinder(g)

	full := model.Path{{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 3, R: 0}}
	got := f.ClampPath(full, landUnit(10), 10)
	want := model.Path{{Q: 0, R: 0}, {Q: 1, R: 0}}
	if !slices.Equal(got, want) {
		t.Errorf("clamped path = %v, want %v", got, want)
	}
}

func TestClampPathIdempotent(t *testing.T) {
	g := model.NewGrid(model.Rectangular, 5)
	f := NewFinder(g)
	u := landUnit(10)

	full := model.Path{
		{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 2, R: 0}, {Q: 3, R: 0},
	}
	once := f.ClampPath(full, u, 2)
	twice := f.ClampPath(once, u, 2)
	if !slices.Equal(once, twice) {
		t.Errorf("second clamp changed the path: %v -> %v", once, twice)
	}
}

func TestClampPathEmpty(t *testing.T) {
	g := model.NewGrid(model.Rectangular, 3)
	f := NewFinder(g)

	if got := f.ClampPath(nil, landUnit(3), 5); len(got) != 0 {
		t.Errorf("clamping an empty path = %v, want empty", got)
	}
}
