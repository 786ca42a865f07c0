package agent

import (
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// compute builds the configured problem on m and runs the configured
// algorithm on it.
func (a *Agent) compute(m *maze.Maze) (*search.Plan, error) {
	opts := a.searchOptions()
	if a.sel.algorithm == ClosestDotSearch {
		return planClosestDot(m, opts)
	}

	switch a.sel.problem {
	case Position, AnyFood:
		var (
			ps  *problem.PositionSearch
			err error
		)
		if a.sel.problem == Position {
			ps, err = problem.NewPositionSearch(m, a.cfg.Goal, problem.WithCost(a.sel.cost))
		} else {
			ps, err = problem.NewAnyFoodSearch(m, problem.WithCost(a.sel.cost))
		}
		if err != nil {
			return nil, err
		}

		return run[maze.Position](a.sel.algorithm, ps,
			positionHeuristic(a.sel.forward, ps), positionHeuristic(a.sel.backward, ps), opts)

	case Corners:
		cs, err := problem.NewCornersSearch(m)
		if err != nil {
			return nil, err
		}

		return run[problem.CoverState](a.sel.algorithm, cs,
			coverHeuristic(a.sel.forward, cs), coverHeuristic(a.sel.backward, cs), opts)

	default:
		fs, err := problem.NewFoodSearch(m)
		if err != nil {
			return nil, err
		}

		return run[problem.CoverState](a.sel.algorithm, fs,
			coverHeuristic(a.sel.forward, fs), coverHeuristic(a.sel.backward, fs), opts)
	}
}

// run dispatches to the search routine selected by alg. Uninformed
// routines ignore both heuristics; only Bidirectional uses hBack.
func run[S comparable](alg Algorithm, p problem.Bidirectional[S], h, hBack search.Heuristic[S], opts []search.Option) (*search.Plan, error) {
	switch alg {
	case DFS:
		return search.DFS[S](p, opts...)
	case BFS:
		return search.BFS[S](p, opts...)
	case UCS:
		return search.UCS[S](p, opts...)
	case AStar:
		return search.AStar[S](p, h, opts...)
	case EHC:
		return search.EnforcedHillClimbing[S](p, h, opts...)
	default:
		return search.Bidirectional[S](p, h, hBack, opts...)
	}
}

// positionHeuristic binds k to ps. Kinds that do not apply were rejected by
// Config.Validate and fall back to the null heuristic.
func positionHeuristic(k HeuristicKind, ps *problem.PositionSearch) search.Heuristic[maze.Position] {
	switch k {
	case Manhattan:
		return heuristic.Manhattan(ps)
	case Euclidean:
		return heuristic.Euclidean(ps)
	case TrueDistance:
		return heuristic.TrueDistance(ps)
	case BackwardManhattan:
		return heuristic.BackwardManhattan(ps)
	default:
		return heuristic.Null[maze.Position]()
	}
}

// coverHeuristic binds k to a corners or food problem.
func coverHeuristic(k HeuristicKind, c heuristic.Cover) search.Heuristic[problem.CoverState] {
	switch k {
	case NearestGoal:
		return heuristic.NearestGoal(c)
	case NearestGoalMaze:
		return heuristic.NearestGoalMaze(c)
	case DistanceToStart:
		return heuristic.DistanceToStart(c)
	case DistanceToStartMaze:
		return heuristic.DistanceToStartMaze(c)
	case FarthestGoal:
		return heuristic.FarthestGoal(c)
	case FarthestGoalMaze:
		return heuristic.FarthestGoalMaze(c)
	case SpanGoals:
		return heuristic.SpanGoals(c)
	case SpanGoalsMaze:
		return heuristic.SpanGoalsMaze(c)
	default:
		return heuristic.Null[problem.CoverState]()
	}
}
