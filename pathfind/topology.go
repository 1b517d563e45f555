// Package pathfind computes optimal paths, movement costs, and reachable
// tile sets for units on rectangular and hexagonal grids. All queries are
// pure: the engine never mutates the grid or unit it is given, and every
// search allocates and discards its own working state.
package pathfind

import (
	"math"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

// Topology defines adjacency and the admissible A* heuristic for one grid
// shape. The search core is topology-agnostic; a Topology is selected once
// per Finder from the grid's Shape.
type Topology interface {
	// Neighbors returns the in-bounds tiles adjacent to c. Coordinates
	// outside the grid are never generated.
	Neighbors(g *model.Grid, c model.Coord) []model.Coord

	// Heuristic estimates the remaining cost from a to b. It never
	// overestimates the true shortest cost (A* admissibility).
	Heuristic(a, b model.Coord) float64

	// Adjacent reports whether a and b are neighbors under this topology.
	Adjacent(a, b model.Coord) bool

	// DirectStep reports whether a->b is a canonical single step. Hex
	// grids charge a penalty for steps reconciled through approximate
	// adjacency; rectangular grids treat every adjacent step as direct.
	DirectStep(a, b model.Coord) bool
}

// ForShape returns the Topology for a grid shape.
func ForShape(s model.Shape) Topology {
	if s == Hexagonal {
		return hexTopology{}
	}
	return rectTopology{}
}

// Shape aliases so callers constructing grids don't need a second import
// just to pick a topology.
const (
	Rectangular = model.Rectangular
	Hexagonal   = model.Hexagonal
)

// rectTopology is the 8-connected square grid: 4 orthogonal plus 4
// diagonal neighbors.
type rectTopology struct{}

var rectDirections = [8]model.Coord{
	{Q: 1, R: 0}, {Q: -1, R: 0}, {Q: 0, R: 1}, {Q: 0, R: -1},
	{Q: 1, R: 1}, {Q: 1, R: -1}, {Q: -1, R: 1}, {Q: -1, R: -1},
}

func (rectTopology) Neighbors(g *model.Grid, c model.Coord) []model.Coord {
	out := make([]model.Coord, 0, 8)
	for _, d := range rectDirections {
		n := c.Add(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Heuristic is the octile distance: the cheapest conceivable route walks
// the shorter axis diagonally at √2 per step and the remainder straight at
// 1 per step. With terrain multipliers clamped to >= 1 this never
// overestimates, unlike plain Manhattan distance once diagonals cost √2.
func (rectTopology) Heuristic(a, b model.Coord) float64 {
	dx := math.Abs(float64(a.Q - b.Q))
	dy := math.Abs(float64(a.R - b.R))
	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}

func (rectTopology) Adjacent(a, b model.Coord) bool {
	if a == b {
		return false
	}
	dq := absInt(a.Q - b.Q)
	dr := absInt(a.R - b.R)
	return dq <= 1 && dr <= 1
}

func (rectTopology) DirectStep(a, b model.Coord) bool { return true }

// hexTopology is the 6-connected axial hex grid.
type hexTopology struct{}

var hexDirections = [6]model.Coord{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

func (hexTopology) Neighbors(g *model.Grid, c model.Coord) []model.Coord {
	out := make([]model.Coord, 0, 6)
	for _, d := range hexDirections {
		n := c.Add(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Heuristic is the axial hex distance.
func (hexTopology) Heuristic(a, b model.Coord) float64 {
	return float64(a.HexDistance(b))
}

func (hexTopology) Adjacent(a, b model.Coord) bool {
	return a.HexDistance(b) == 1
}

// DirectStep reports whether b sits one canonical axial direction from a.
// Steps that are adjacent only by distance (coordinate reconciliation of
// legacy offset tiles) are charged the non-direct penalty by the cost
// model.
func (hexTopology) DirectStep(a, b model.Coord) bool {
	d := b.Sub(a)
	for _, dir := range hexDirections {
		if d == dir {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
