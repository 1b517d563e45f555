package model

import (
	"fmt"
	"math"
	"slices"
)

// Unit is the movement profile the engine needs: where the unit stands,
// what it may enter, and how far it can still go this turn. Per-turn reset
// of MovePoints belongs to the turn system, not this engine.
type Unit struct {
	ID       int            `json:"id"`
	Owner    string         `json:"owner"`
	Position Coord          `json:"position"`
	Domain   MovementDomain `json:"movement_domain"`

	// MovePoints is the remaining movement budget, decremented by edge
	// costs as the unit advances. MaxMovePoints is the per-turn reset value.
	MovePoints    float64 `json:"move_points"`
	MaxMovePoints float64 `json:"max_move_points"`

	// Crossable lists restricted terrain this unit may enter anyway,
	// e.g. land units with amphibious transport crossing water.
	Crossable []TerrainType `json:"crossable,omitempty"`
}

// CanCross reports whether the unit may enter restricted terrain t.
func (u *Unit) CanCross(t TerrainType) bool {
	return slices.Contains(u.Crossable, t)
}

// Validate fails fast on malformed movement profiles. The pathfinding
// boundary calls this so bad input surfaces as a descriptive error rather
// than a silent no-path.
func (u *Unit) Validate() error {
	if u == nil {
		return fmt.Errorf("unit is nil")
	}
	if !u.Domain.Valid() {
		return fmt.Errorf("unit %d: unknown movement domain %d", u.ID, u.Domain)
	}
	if math.IsNaN(u.MovePoints) || u.MovePoints < 0 {
		return fmt.Errorf("unit %d: invalid movement points %v", u.ID, u.MovePoints)
	}
	if math.IsNaN(u.MaxMovePoints) || u.MaxMovePoints < 0 {
		return fmt.Errorf("unit %d: invalid max movement points %v", u.ID, u.MaxMovePoints)
	}
	return nil
}
