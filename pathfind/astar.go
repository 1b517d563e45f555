package pathfind

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

// Input validation failures. No-path is NOT an error — FindPath returns a
// nil path for unreachable goals.
var (
	ErrOutOfBounds = errors.New("coordinate outside grid")
	ErrInvalidUnit = errors.New("invalid unit movement profile")
)

// Finder answers path and reachability queries over one grid snapshot.
// Every query allocates its own working set and is safe to run
// concurrently with other queries on the same Finder.
type Finder struct {
	grid *model.Grid
	topo Topology
	cost *CostModel
}

// NewFinder builds a Finder for the grid, selecting the topology from the
// grid's shape.
func NewFinder(g *model.Grid) *Finder {
	return &Finder{grid: g, topo: ForShape(g.Shape), cost: NewCostModel(g)}
}

// WithCostModel replaces the default cost model (custom tables or movement
// rules).
func (f *Finder) WithCostModel(m *CostModel) *Finder {
	f.cost = m
	return f
}

// Cost exposes the active cost model, e.g. for callers pricing a
// pre-computed path.
func (f *Finder) Cost() *CostModel { return f.cost }

func (f *Finder) checkQuery(u *model.Unit, coords ...model.Coord) error {
	if err := u.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUnit, err)
	}
	for _, c := range coords {
		if !f.grid.Contains(c) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
	}
	return nil
}

// FindPath returns the cheapest path from start to goal for the unit, both
// endpoints inclusive. A nil path with a nil error means the goal is
// unreachable — an expected outcome. Errors are reserved for invalid
// input: out-of-bounds coordinates or a malformed unit profile.
//
// The frontier is a priority heap, so the search runs in O(E log V); the
// bounded grid sizes this engine targets keep that comfortably small.
func (f *Finder) FindPath(start, goal model.Coord, u *model.Unit) (model.Path, error) {
	if err := f.checkQuery(u, start, goal); err != nil {
		return nil, err
	}
	if start == goal {
		return model.Path{start}, nil
	}
	// A goal the unit can never stand on cannot be reached; skip the search.
	if !f.cost.Enterable(goal, u) {
		return nil, nil
	}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierNode{coord: start, g: 0, f: f.topo.Heuristic(start, goal)})

	cameFrom := make(map[model.Coord]model.Coord)
	gScore := map[model.Coord]float64{start: 0}
	closed := make(map[model.Coord]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*frontierNode)
		if cur.coord == goal {
			return reconstruct(cameFrom, start, goal), nil
		}
		if closed[cur.coord] {
			continue // stale duplicate left behind by a cheaper relaxation
		}
		closed[cur.coord] = true

		for _, n := range f.topo.Neighbors(f.grid, cur.coord) {
			stepCost := f.cost.StepCost(cur.coord, n, u)
			if math.IsInf(stepCost, 1) {
				continue
			}
			tentative := gScore[cur.coord] + stepCost
			if old, seen := gScore[n]; seen && tentative >= old {
				continue
			}
			gScore[n] = tentative
			cameFrom[n] = cur.coord
			heap.Push(open, &frontierNode{
				coord: n,
				g:     tentative,
				f:     tentative + f.topo.Heuristic(n, goal),
			})
		}
	}
	return nil, nil // frontier exhausted: no path
}

// PathCost sums the edge costs along a path for the unit.
func (f *Finder) PathCost(path model.Path, u *model.Unit) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += f.cost.StepCost(path[i-1], path[i], u)
	}
	return total
}

// CanReachTile reports whether the unit can reach target this turn: a path
// exists and its total cost fits the remaining movement budget.
func (f *Finder) CanReachTile(u *model.Unit, target model.Coord) (bool, error) {
	path, err := f.FindPath(u.Position, target, u)
	if err != nil {
		return false, err
	}
	if path == nil {
		return false, nil
	}
	return f.PathCost(path, u) <= u.MovePoints, nil
}

func reconstruct(cameFrom map[model.Coord]model.Coord, start, goal model.Coord) model.Path {
	path := model.Path{goal}
	cur := goal
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
