package model

// TerrainType classifies a tile. The pathfinding cost tables key off this,
// so new types need a multiplier entry before units can price them.
type TerrainType byte

const (
	Plains   TerrainType = iota // open ground, baseline cost
	Forest                      // slow going for anything on foot
	Hills                       // rolling ground, slow
	Mountain                    // barely passable high ground
	Desert                      // open but draining
	Water                       // naval only, unless a unit can cross it
	Swamp                       // slow, wet ground
)

var terrainNames = map[TerrainType]string{
	Plains:   "plains",
	Forest:   "forest",
	Hills:    "hills",
	Mountain: "mountain",
	Desert:   "desert",
	Water:    "water",
	Swamp:    "swamp",
}

func (t TerrainType) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "unknown"
}

// MovementDomain determines which terrain a unit may enter at all.
type MovementDomain byte

const (
	DomainLand MovementDomain = iota
	DomainSea
	DomainAir
)

func (d MovementDomain) String() string {
	switch d {
	case DomainLand:
		return "land"
	case DomainSea:
		return "sea"
	case DomainAir:
		return "air"
	}
	return "unknown"
}

// Valid reports whether d is one of the declared domains. Unit validation
// uses this to fail fast on profiles deserialized from untrusted snapshots.
func (d MovementDomain) Valid() bool {
	return d == DomainLand || d == DomainSea || d == DomainAir
}

// RestrictedFor reports whether terrain t is off-limits for domain d.
// Restricted terrain is impassable unless the unit's crossable set
// explicitly includes it (e.g. land infantry aboard transports).
// Air units overfly everything.
func (t TerrainType) RestrictedFor(d MovementDomain) bool {
	switch d {
	case DomainLand:
		return t == Water
	case DomainSea:
		return t != Water
	case DomainAir:
		return false
	}
	return true
}
