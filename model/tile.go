package model

// Occupant is a lightweight reference to the unit standing on a tile.
// The engine only needs the owner to decide blocking; the full unit
// lives with the game-state collaborator.
type Occupant struct {
	UnitID int    `json:"unit_id"`
	Owner  string `json:"owner"`
}

// Structure is a lightweight reference to the building on a tile.
type Structure struct {
	BuildingID int    `json:"building_id"`
	Owner      string `json:"owner"`
}

// Tile is one cell of the game grid. Its coordinate is immutable for the
// lifetime of a search; occupancy may change between searches but never
// mid-search. A tile holds at most one of Occupant/Structure for blocking
// purposes.
type Tile struct {
	// Coord is the axial (or column/row) identity. It is a pointer so
	// absence is explicit: a tile at the axial origin still counts as
	// carrying an axial coordinate. Grid.Add normalizes it.
	Coord     *Coord      `json:"coord,omitempty"`
	Terrain   TerrainType `json:"terrain"`
	Elevation int         `json:"elevation"`

	// Offset is the legacy column/row identity retained while a grid
	// migrates representations. Canonical identity prefers Coord whenever
	// both are present.
	Offset *Offset `json:"offset,omitempty"`

	Occupant  *Occupant  `json:"occupant,omitempty"`
	Structure *Structure `json:"structure,omitempty"`
}

// BlockedFor reports whether the tile is blocked for a unit owned by owner.
// Enemy-held tiles (unit or building) block; friendly ones do not — stacking
// policy beyond that belongs to the caller layer.
func (t *Tile) BlockedFor(owner string) bool {
	if t.Occupant != nil && t.Occupant.Owner != owner {
		return true
	}
	if t.Structure != nil && t.Structure.Owner != owner {
		return true
	}
	return false
}

// Clone returns a deep copy of the tile.
func (t *Tile) Clone() *Tile {
	c := *t
	if t.Coord != nil {
		ax := *t.Coord
		c.Coord = &ax
	}
	if t.Offset != nil {
		off := *t.Offset
		c.Offset = &off
	}
	if t.Occupant != nil {
		occ := *t.Occupant
		c.Occupant = &occ
	}
	if t.Structure != nil {
		s := *t.Structure
		c.Structure = &s
	}
	return &c
}
