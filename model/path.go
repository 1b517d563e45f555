package model

// Path is an ordered tile sequence from start to goal, both inclusive.
// Consecutive entries are grid-adjacent under the grid's topology.
// A nil path means "no path exists" — an expected outcome, not an error.
type Path []Coord

// Start returns the first tile of the path.
func (p Path) Start() (Coord, bool) {
	if len(p) == 0 {
		return Coord{}, false
	}
	return p[0], true
}

// Goal returns the last tile of the path.
func (p Path) Goal() (Coord, bool) {
	if len(p) == 0 {
		return Coord{}, false
	}
	return p[len(p)-1], true
}

// Contains reports whether c appears anywhere on the path.
func (p Path) Contains(c Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}
