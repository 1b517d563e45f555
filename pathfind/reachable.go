package pathfind

import (
	"container/heap"
	"math"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

// ReachableSet maps each tile reachable within a movement budget to its
// minimal cost from the unit's position. Computed fresh per query and
// owned by the caller.
type ReachableSet map[model.Coord]float64

// ReachableTiles returns every tile the unit can reach with its remaining
// movement points: uniform-cost (Dijkstra) frontier expansion from the
// unit's position, no goal heuristic. The starting tile is always present
// at cost 0; tiles reachable only through an infinite-cost edge are
// excluded.
func (f *Finder) ReachableTiles(u *model.Unit) (ReachableSet, error) {
	return f.reachableWithin(u, u.MovePoints)
}

// reachableWithin runs the budgeted Dijkstra expansion. An infinite budget
// yields the full shortest-cost map, which the tests use as a brute-force
// oracle for heuristic admissibility.
func (f *Finder) reachableWithin(u *model.Unit, budget float64) (ReachableSet, error) {
	if err := f.checkQuery(u, u.Position); err != nil {
		return nil, err
	}

	dist := ReachableSet{u.Position: 0}
	closed := make(map[model.Coord]bool)
	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierNode{coord: u.Position, g: 0, f: 0})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*frontierNode)
		if closed[cur.coord] {
			continue
		}
		closed[cur.coord] = true

		for _, n := range f.topo.Neighbors(f.grid, cur.coord) {
			if closed[n] {
				continue // finalized cost is never revised upward
			}
			stepCost := f.cost.StepCost(cur.coord, n, u)
			if math.IsInf(stepCost, 1) {
				continue
			}
			tentative := dist[cur.coord] + stepCost
			if tentative > budget {
				continue
			}
			if old, seen := dist[n]; seen && tentative >= old {
				continue
			}
			dist[n] = tentative
			heap.Push(open, &frontierNode{coord: n, g: tentative, f: tentative})
		}
	}
	return dist, nil
}
