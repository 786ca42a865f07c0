package heuristic

import (
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// MazeDistance returns the number of moves on a shortest path from a to b,
// found by breadth-first search. Both cells must be open.
// Returns problem.ErrStartIsWall, problem.ErrGoalIsWall or
// search.ErrNoSolution when b is unreachable from a.
func MazeDistance(l problem.Layout, a, b maze.Position) (int, error) {
	ps, err := problem.NewPositionSearch(l, b, problem.WithStart(a))
	if err != nil {
		return 0, err
	}
	plan, err := search.BFS[maze.Position](ps)
	if err != nil {
		return 0, err
	}
	return plan.Len(), nil
}

// cachedDistance is MazeDistance through a write-once cache. Unreachable or
// invalid pairs cost problem.InfeasibleCost.
func cachedDistance(l problem.Layout, cache *problem.DistanceCache, a, b maze.Position) float64 {
	if d, ok := cache.Get(a, b); ok {
		return d
	}
	d := float64(problem.InfeasibleCost)
	if n, err := MazeDistance(l, a, b); err == nil {
		d = float64(n)
	}
	cache.Put(a, b, d)
	return d
}
