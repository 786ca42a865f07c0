package heuristic

import (
	"math"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Null returns the zero heuristic for any state type.
func Null[S comparable]() search.Heuristic[S] {
	return search.NullHeuristic[S]
}

// Manhattan estimates the Manhattan distance to the nearest goal of ps.
func Manhattan(ps *problem.PositionSearch) search.Heuristic[maze.Position] {
	goals := ps.Goals()
	return func(p maze.Position) float64 {
		return nearest(p, goals, manhattan)
	}
}

// Euclidean estimates the straight-line distance to the nearest goal of ps.
func Euclidean(ps *problem.PositionSearch) search.Heuristic[maze.Position] {
	goals := ps.Goals()
	return func(p maze.Position) float64 {
		return nearest(p, goals, maze.Euclidean)
	}
}

// TrueDistance returns the exact maze distance to the nearest goal of ps,
// memoized in ps.Cache().
func TrueDistance(ps *problem.PositionSearch) search.Heuristic[maze.Position] {
	goals := ps.Goals()
	l, cache := ps.Layout(), ps.Cache()
	return func(p maze.Position) float64 {
		return nearest(p, goals, func(a, b maze.Position) float64 {
			return cachedDistance(l, cache, a, b)
		})
	}
}

// BackwardManhattan estimates the Manhattan distance back to the start of
// ps. It is the backward-side companion of Manhattan.
func BackwardManhattan(ps *problem.PositionSearch) search.Heuristic[maze.Position] {
	start := ps.StartState()
	return func(p maze.Position) float64 {
		return float64(maze.Manhattan(p, start))
	}
}

// Cover is the view of a corners or food problem the cover heuristics need.
// *problem.CornersSearch and *problem.FoodSearch implement it.
type Cover interface {
	StartState() problem.CoverState
	Unvisited(s problem.CoverState) []maze.Position
	Layout() problem.Layout
	Cache() *problem.DistanceCache
}

// NearestGoal estimates the Manhattan distance to the nearest unvisited goal.
func NearestGoal(c Cover) search.Heuristic[problem.CoverState] {
	return func(s problem.CoverState) float64 {
		return nearest(s.Pos, c.Unvisited(s), manhattan)
	}
}

// NearestGoalMaze returns the maze distance to the nearest unvisited goal.
func NearestGoalMaze(c Cover) search.Heuristic[problem.CoverState] {
	l, cache := c.Layout(), c.Cache()
	return func(s problem.CoverState) float64 {
		return nearest(s.Pos, c.Unvisited(s), func(a, b maze.Position) float64 {
			return cachedDistance(l, cache, a, b)
		})
	}
}

// FarthestGoal estimates the Manhattan distance to the farthest unvisited
// goal. Every goal must still be reached, so it dominates NearestGoal.
func FarthestGoal(c Cover) search.Heuristic[problem.CoverState] {
	return func(s problem.CoverState) float64 {
		return farthest(s.Pos, c.Unvisited(s), manhattan)
	}
}

// FarthestGoalMaze returns the maze distance to the farthest unvisited goal.
func FarthestGoalMaze(c Cover) search.Heuristic[problem.CoverState] {
	l, cache := c.Layout(), c.Cache()
	return func(s problem.CoverState) float64 {
		return farthest(s.Pos, c.Unvisited(s), func(a, b maze.Position) float64 {
			return cachedDistance(l, cache, a, b)
		})
	}
}

// SpanGoals adds the Manhattan distance to the nearest unvisited goal and
// the widest Manhattan distance between two unvisited goals. Whichever goal
// is reached first, both ends of the widest pair are still ahead.
func SpanGoals(c Cover) search.Heuristic[problem.CoverState] {
	return func(s problem.CoverState) float64 {
		return span(s.Pos, c.Unvisited(s), manhattan)
	}
}

// SpanGoalsMaze is SpanGoals over maze distances.
func SpanGoalsMaze(c Cover) search.Heuristic[problem.CoverState] {
	l, cache := c.Layout(), c.Cache()
	return func(s problem.CoverState) float64 {
		return span(s.Pos, c.Unvisited(s), func(a, b maze.Position) float64 {
			return cachedDistance(l, cache, a, b)
		})
	}
}

// DistanceToStart estimates the Manhattan distance back to the start cell.
func DistanceToStart(c Cover) search.Heuristic[problem.CoverState] {
	start := c.StartState().Pos
	return func(s problem.CoverState) float64 {
		return float64(maze.Manhattan(s.Pos, start))
	}
}

// DistanceToStartMaze returns the maze distance back to the start cell.
func DistanceToStartMaze(c Cover) search.Heuristic[problem.CoverState] {
	start := c.StartState().Pos
	l, cache := c.Layout(), c.Cache()
	return func(s problem.CoverState) float64 {
		return cachedDistance(l, cache, s.Pos, start)
	}
}

// nearest returns the minimum dist(p, g) over goals, or 0 without goals.
func nearest(p maze.Position, goals []maze.Position, dist func(a, b maze.Position) float64) float64 {
	if len(goals) == 0 {
		return 0
	}
	best := math.Inf(1)
	for _, g := range goals {
		if d := dist(p, g); d < best {
			best = d
		}
	}
	return best
}

// farthest returns the maximum dist(p, g) over goals, or 0 without goals.
func farthest(p maze.Position, goals []maze.Position, dist func(a, b maze.Position) float64) float64 {
	best := 0.0
	for _, g := range goals {
		best = math.Max(best, dist(p, g))
	}
	return best
}

// span returns nearest(p, goals) plus the largest pairwise goal distance.
func span(p maze.Position, goals []maze.Position, dist func(a, b maze.Position) float64) float64 {
	wide := 0.0
	for i, a := range goals {
		for _, b := range goals[i+1:] {
			wide = math.Max(wide, dist(a, b))
		}
	}
	return nearest(p, goals, dist) + wide
}

func manhattan(a, b maze.Position) float64 { return float64(maze.Manhattan(a, b)) }
