package pathfind

import (
	"math"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

// ClampPath truncates a path to the longest prefix whose cumulative edge
// cost fits the budget. A unit committed to a multi-turn path advances as
// far as it can afford each turn without the caller recomputing the
// search. If even the first step exceeds the budget, the result is the
// single starting tile. Clamping an already-clamped path is a no-op.
func (f *Finder) ClampPath(path model.Path, u *model.Unit, budget float64) model.Path {
	if len(path) == 0 {
		return path
	}
	out := model.Path{path[0]}
	spent := 0.0
	for i := 1; i < len(path); i++ {
		stepCost := f.cost.StepCost(path[i-1], path[i], u)
		if math.IsInf(stepCost, 1) || spent+stepCost > budget {
			break
		}
		spent += stepCost
		out = append(out, path[i])
	}
	return out
}
