package model

import "math"

// Coord identifies a tile. Rectangular grids read Q/R as column/row (x/y);
// hexagonal grids read them as axial q/r. Which reading applies is resolved
// once per Grid instance by its Shape.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate (hex grids only).
func (c Coord) S() int { return -c.Q - c.R }

func (c Coord) Add(o Coord) Coord { return Coord{Q: c.Q + o.Q, R: c.R + o.R} }
func (c Coord) Sub(o Coord) Coord { return Coord{Q: c.Q - o.Q, R: c.R - o.R} }

// HexDistance returns the axial grid distance between two hexes.
func (c Coord) HexDistance(o Coord) int {
	dq := c.Q - o.Q
	dr := c.R - o.R
	return (absInt(dq) + absInt(dr) + absInt(dq+dr)) / 2
}

// Offset is a legacy column/row pair kept on tiles while a grid migrates
// from offset to axial storage.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToAxial converts an odd-r offset pair to axial coordinates.
func (o Offset) ToAxial() Coord {
	return Coord{Q: o.X - (o.Y-(o.Y&1))/2, R: o.Y}
}

// ToOffset converts axial coordinates to the odd-r offset pair.
func (c Coord) ToOffset() Offset {
	return Offset{X: c.Q + (c.R-(c.R&1))/2, Y: c.R}
}

// ResolveIdentity picks the canonical coordinate for a tile that may carry
// either or both representations. Axial wins when both are present; a tile
// with neither has no identity.
func ResolveIdentity(axial *Coord, offset *Offset) (Coord, bool) {
	switch {
	case axial != nil:
		return *axial, true
	case offset != nil:
		return offset.ToAxial(), true
	}
	return Coord{}, false
}

const sqrt3 = 1.7320508075688772

// ToPixelHex converts an axial coordinate to the pixel center of a
// pointy-top hex of the given size.
func (c Coord) ToPixelHex(hexSize float64) (x, y float64) {
	x = hexSize * (sqrt3*float64(c.Q) + sqrt3/2*float64(c.R))
	y = hexSize * (3.0 / 2.0 * float64(c.R))
	return
}

// ToPixelRect converts a column/row coordinate to the pixel center of a
// square tile of the given size.
func (c Coord) ToPixelRect(tileSize float64) (x, y float64) {
	x = (float64(c.Q) + 0.5) * tileSize
	y = (float64(c.R) + 0.5) * tileSize
	return
}

// PixelToHex converts a pixel position back to the axial coordinate of the
// pointy-top hex containing it.
func PixelToHex(x, y, hexSize float64) Coord {
	q := (sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return axialRound(q, r)
}

// PixelToRect converts a pixel position back to the column/row of the
// square tile containing it.
func PixelToRect(x, y, tileSize float64) Coord {
	return Coord{
		Q: int(math.Floor(x / tileSize)),
		R: int(math.Floor(y / tileSize)),
	}
}

// axialRound snaps fractional axial coordinates to the nearest hex by
// rounding in cube space and fixing the component with the largest error.
func axialRound(q, r float64) Coord {
	s := -q - r
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Coord{Q: int(rq), R: int(rr)}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
