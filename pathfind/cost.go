package pathfind

import (
	"math"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/rules"
)

// Impassable is the infinite-cost sentinel. Edges priced at Impassable are
// never relaxed; unreachable-but-valid tiles surface as ordinary no-path
// results rather than errors.
func Impassable() float64 { return math.Inf(1) }

// CostTable maps terrain to its movement multiplier. Multipliers are
// clamped to >= 1 so the search heuristics stay admissible.
type CostTable map[model.TerrainType]float64

// DefaultCostTable returns the standard terrain pricing.
func DefaultCostTable() CostTable {
	return CostTable{
		model.Plains:   1,
		model.Forest:   2,
		model.Hills:    2,
		model.Mountain: 3,
		model.Desert:   1.5,
		model.Water:    1, // sea domain only; the restriction gate keeps others out
		model.Swamp:    2,
	}
}

// Validate clamps every multiplier into [1, 50]. Terrain missing from the
// table prices at the plains baseline.
func (t CostTable) Validate() {
	for terrain, m := range t {
		if math.IsNaN(m) || m < 1 {
			t[terrain] = 1
		} else if m > 50 {
			t[terrain] = 50
		}
	}
}

func (t CostTable) multiplier(terrain model.TerrainType) float64 {
	if m, ok := t[terrain]; ok {
		return m
	}
	return 1
}

const (
	elevationFactor  = 0.5 // cost added per level of elevation change (rectangular)
	hexIndirectAlign = 1.1 // penalty for hex steps reconciled via approximate adjacency
	airFlatCost      = 1.0
)

// CostModel prices one edge (from -> adjacent to) for a unit. It is a pure
// function of its inputs: same edge, same unit, same price.
type CostModel struct {
	grid  *model.Grid
	topo  Topology
	table CostTable
	mods  *rules.Engine // optional movement-rule modifiers
}

// NewCostModel builds a cost model over a grid with the default table and
// no rule modifiers.
func NewCostModel(g *model.Grid) *CostModel {
	return &CostModel{grid: g, topo: ForShape(g.Shape), table: DefaultCostTable()}
}

// WithTable replaces the terrain table. The table is validated in place.
func (m *CostModel) WithTable(t CostTable) *CostModel {
	t.Validate()
	m.table = t
	return m
}

// WithRules attaches expr movement-rule modifiers, applied after all
// built-in adjustments.
func (m *CostModel) WithRules(eng *rules.Engine) *CostModel {
	m.mods = eng
	return m
}

// Enterable reports whether the unit could ever stand on the tile at c:
// the tile exists, is not enemy-held, and its terrain is open to the
// unit's domain. Used to short-circuit searches toward hopeless goals.
func (m *CostModel) Enterable(c model.Coord, u *model.Unit) bool {
	t, ok := m.grid.At(c)
	if !ok {
		return false
	}
	if t.Terrain.RestrictedFor(u.Domain) && !u.CanCross(t.Terrain) {
		return false
	}
	return !t.BlockedFor(u.Owner)
}

// StepCost prices the edge from -> to for the unit. The result is a finite
// non-negative value or the infinite sentinel, never negative.
//
// Order matters: the domain restriction short-circuits before any
// adjustment, then enemy occupancy, then terrain/elevation/geometry.
func (m *CostModel) StepCost(from, to model.Coord, u *model.Unit) float64 {
	src, ok := m.grid.At(from)
	if !ok {
		return Impassable()
	}
	dst, ok := m.grid.At(to)
	if !ok {
		return Impassable()
	}

	if dst.Terrain.RestrictedFor(u.Domain) && !u.CanCross(dst.Terrain) {
		return Impassable()
	}
	if dst.BlockedFor(u.Owner) {
		return Impassable()
	}

	var cost float64
	switch {
	case u.Domain == model.DomainAir:
		// Air overflies terrain and elevation; only geometry still applies.
		cost = airFlatCost
	default:
		cost = m.table.multiplier(dst.Terrain)
		if m.grid.Shape == model.Rectangular {
			cost += elevationFactor * math.Abs(float64(dst.Elevation-src.Elevation))
		}
	}

	switch m.grid.Shape {
	case model.Rectangular:
		if from.Q != to.Q && from.R != to.R { // diagonal step
			cost *= math.Sqrt2
		}
	case model.Hexagonal:
		if !m.topo.DirectStep(from, to) {
			cost *= hexIndirectAlign
		}
	}

	if m.mods != nil {
		cost = m.mods.Apply(rules.MoveEnv{From: *src, To: *dst, Unit: *u}, cost)
	}
	return cost
}
