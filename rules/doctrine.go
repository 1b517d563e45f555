package rules

import "fmt"

// Doctrine is a high-level movement posture: how hard units avoid rough
// ground and climbs. Weights are 0.0–1.0; the compiler maps them to
// concrete rule factors.
type Doctrine struct {
	Name           string  `json:"name"`
	RoughAversion  float64 `json:"rough_aversion"`  // extra penalty on forest/swamp/hills
	ClimbAversion  float64 `json:"climb_aversion"`  // extra penalty on ascending steps
	DesertAversion float64 `json:"desert_aversion"` // extra penalty on desert crossings
	ForbidCliffs   bool    `json:"forbid_cliffs"`   // refuse climbs of 4+ levels outright
}

// DefaultDoctrine returns a neutral posture that adds no penalties.
func DefaultDoctrine() Doctrine {
	return Doctrine{Name: "Neutral"}
}

// Validate clamps all weights to their valid ranges.
func (d *Doctrine) Validate() {
	d.RoughAversion = clamp(d.RoughAversion, 0, 1)
	d.ClimbAversion = clamp(d.ClimbAversion, 0, 1)
	d.DesertAversion = clamp(d.DesertAversion, 0, 1)
}

// CompileDoctrine generates a rule set from a doctrine's weights. All
// conditions are fixed strings or built via fmt.Sprintf with interpolated
// values — the compiler never generates invalid expr.
func CompileDoctrine(d Doctrine) []*Rule {
	d.Validate()
	var rules []*Rule

	if d.RoughAversion > 0 {
		rules = append(rules, &Rule{
			Name:         "rough-terrain-aversion",
			Priority:     100,
			ConditionSrc: `Domain() == "land" && TerrainIn("forest", "swamp", "hills")`,
			Factor:       lerpf(1, 2, d.RoughAversion),
		})
	}

	if d.ClimbAversion > 0 {
		rules = append(rules, &Rule{
			Name:         "climb-aversion",
			Priority:     90,
			ConditionSrc: `Domain() == "land" && Climb() >= 2`,
			Factor:       lerpf(1, 1.5, d.ClimbAversion),
		})
	}

	if d.DesertAversion > 0 {
		rules = append(rules, &Rule{
			Name:         "desert-aversion",
			Priority:     80,
			ConditionSrc: fmt.Sprintf(`Domain() == "land" && TerrainIn(%q)`, "desert"),
			Factor:       lerpf(1, 1.8, d.DesertAversion),
		})
	}

	if d.ForbidCliffs {
		rules = append(rules, &Rule{
			Name:         "forbid-cliffs",
			Priority:     200,
			ConditionSrc: `Domain() == "land" && Climb() >= 4`,
			Forbid:       true,
		})
	}

	return rules
}

// lerpf linearly interpolates between min and max by t (0–1).
func lerpf(min, max, t float64) float64 {
	return min + (max-min)*t
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
