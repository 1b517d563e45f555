package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoTile is returned by grid mutators addressing a coordinate with no
// tile.
var ErrNoTile = errors.New("no tile at coordinate")

// Shape selects the grid topology. It is fixed at construction; all
// coordinate interpretation and adjacency flows from it.
type Shape byte

const (
	Rectangular Shape = iota
	Hexagonal
)

func (s Shape) String() string {
	switch s {
	case Rectangular:
		return "rectangular"
	case Hexagonal:
		return "hexagonal"
	}
	return "unknown"
}

// Grid is a finite arrangement of tiles. Storage is map-keyed so hex
// rhombi, custom test shapes, and mid-migration grids all fit. The
// pathfinding engine borrows grids read-only; anything it returns is
// freshly allocated.
type Grid struct {
	Shape Shape
	Size  int
	Tiles map[Coord]*Tile
}

// NewGrid builds a square size×size grid of plains at elevation 0.
// Rectangular grids span columns/rows [0,size); hexagonal grids span the
// axial rhombus q,r ∈ [0,size).
func NewGrid(shape Shape, size int) *Grid {
	g := &Grid{
		Shape: shape,
		Size:  size,
		Tiles: make(map[Coord]*Tile, size*size),
	}
	for r := 0; r < size; r++ {
		for q := 0; q < size; q++ {
			c := Coord{Q: q, R: r}
			g.Tiles[c] = &Tile{Coord: &c, Terrain: Plains}
		}
	}
	return g
}

// At returns the tile at c, if it exists.
func (g *Grid) At(c Coord) (*Tile, bool) {
	t, ok := g.Tiles[c]
	return t, ok
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.Tiles[c]
	return ok
}

// Add inserts (or replaces) a tile, keyed by its canonical coordinate.
// Axial identity wins whenever present — even at the origin — and tiles
// carrying only a legacy offset pair are resolved through it.
func (g *Grid) Add(t *Tile) error {
	c, ok := ResolveIdentity(t.Coord, t.Offset)
	if !ok {
		return fmt.Errorf("tile has no identity")
	}
	t.Coord = &c
	g.Tiles[c] = t
	return nil
}

// SetTerrain changes the terrain of the tile at c.
func (g *Grid) SetTerrain(c Coord, terrain TerrainType) error {
	t, ok := g.Tiles[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoTile, c)
	}
	t.Terrain = terrain
	return nil
}

// SetElevation changes the elevation of the tile at c.
func (g *Grid) SetElevation(c Coord, elevation int) error {
	t, ok := g.Tiles[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoTile, c)
	}
	t.Elevation = elevation
	return nil
}

// PlaceOccupant records a unit standing at c. A tile holds either a unit
// or a structure, never both.
func (g *Grid) PlaceOccupant(c Coord, unitID int, owner string) error {
	t, ok := g.Tiles[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoTile, c)
	}
	if t.Structure != nil {
		return fmt.Errorf("tile %v already holds a structure", c)
	}
	t.Occupant = &Occupant{UnitID: unitID, Owner: owner}
	return nil
}

// PlaceStructure records a building at c.
func (g *Grid) PlaceStructure(c Coord, buildingID int, owner string) error {
	t, ok := g.Tiles[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoTile, c)
	}
	if t.Occupant != nil {
		return fmt.Errorf("tile %v already holds a unit", c)
	}
	t.Structure = &Structure{BuildingID: buildingID, Owner: owner}
	return nil
}

// ClearOccupant removes any unit reference from the tile at c.
func (g *Grid) ClearOccupant(c Coord) {
	if t, ok := g.Tiles[c]; ok {
		t.Occupant = nil
	}
}

// Clone returns a deep copy. Workers snapshot grids this way so a search
// never shares mutable state with the game loop.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Shape: g.Shape,
		Size:  g.Size,
		Tiles: make(map[Coord]*Tile, len(g.Tiles)),
	}
	for c, t := range g.Tiles {
		out.Tiles[c] = t.Clone()
	}
	return out
}

// gridJSON is the serialized form: map keys are not JSON-friendly, so
// tiles travel as a list and are re-keyed on decode.
type gridJSON struct {
	Shape Shape   `json:"shape"`
	Size  int     `json:"size"`
	Tiles []*Tile `json:"tiles"`
}

func (g *Grid) MarshalJSON() ([]byte, error) {
	out := gridJSON{Shape: g.Shape, Size: g.Size, Tiles: make([]*Tile, 0, len(g.Tiles))}
	for _, t := range g.Tiles {
		out.Tiles = append(out.Tiles, t)
	}
	return json.Marshal(out)
}

func (g *Grid) UnmarshalJSON(data []byte) error {
	var in gridJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	g.Shape = in.Shape
	g.Size = in.Size
	g.Tiles = make(map[Coord]*Tile, len(in.Tiles))
	for _, t := range in.Tiles {
		if err := g.Add(t); err != nil {
			return fmt.Errorf("decode grid: %w", err)
		}
	}
	return nil
}
