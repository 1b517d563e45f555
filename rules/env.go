package rules

import (
	"strings"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

// MoveEnv wraps one candidate step and exposes helper methods callable
// from expr conditions. It is built per edge by the cost model.
type MoveEnv struct {
	From model.Tile
	To   model.Tile
	Unit model.Unit
}

// Terrain returns the destination terrain name.
func (e MoveEnv) Terrain() string { return e.To.Terrain.String() }

// FromTerrain returns the source terrain name.
func (e MoveEnv) FromTerrain() string { return e.From.Terrain.String() }

// TerrainIn reports whether the destination terrain is one of the named types.
func (e MoveEnv) TerrainIn(names ...string) bool {
	for _, n := range names {
		if strings.EqualFold(e.To.Terrain.String(), n) {
			return true
		}
	}
	return false
}

// Climb returns how many elevation levels the step ascends (0 when flat
// or descending).
func (e MoveEnv) Climb() int {
	d := e.To.Elevation - e.From.Elevation
	if d < 0 {
		return 0
	}
	return d
}

// Drop returns how many elevation levels the step descends.
func (e MoveEnv) Drop() int {
	d := e.From.Elevation - e.To.Elevation
	if d < 0 {
		return 0
	}
	return d
}

// Domain returns the moving unit's domain name ("land", "sea", "air").
func (e MoveEnv) Domain() string { return e.Unit.Domain.String() }

// Owner returns the moving unit's owner.
func (e MoveEnv) Owner() string { return e.Unit.Owner }

// Elevation returns the destination tile's elevation.
func (e MoveEnv) Elevation() int { return e.To.Elevation }
