package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

const (
	// corridor has the start at (1,1) and four open cells to the east.
	corridor = "%%%%%%%\n%P    %\n%%%%%%%"

	// openBoard is a 5×5 interior, start (3,3), pillar (3,4), food in the
	// four inner corners.
	openBoard = `%%%%%%%
%.   .%
%  %  %
%  P  %
%     %
%.   .%
%%%%%%%`

	// snake has exactly one route from (1,5) to the pellet at (6,1).
	snake = `%%%%%%%%
%P     %
%%%%%% %
%      %
% %%%%%%
%     .%
%%%%%%%%`

	// sealed keeps the pellet at (3,1) behind a wall.
	sealed = "%%%%%\n%P%.%\n%%%%%"
)

var (
	north, south, east, west = problem.North, problem.South, problem.East, problem.West
)

func mustMaze(t *testing.T, text string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(text)
	require.NoError(t, err)
	return m
}

func mustPosition(t *testing.T, l problem.Layout, goal maze.Position, opts ...problem.PositionOption) *problem.PositionSearch {
	t.Helper()
	ps, err := problem.NewPositionSearch(l, goal, opts...)
	require.NoError(t, err)
	return ps
}

// planner runs one algorithm on a position problem.
type planner struct {
	name string
	run  func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error)
}

// planners covers every algorithm with Manhattan guidance where one applies.
var planners = []planner{
	{"DFS", func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error) {
		return search.DFS[maze.Position](ps, opts...)
	}},
	{"BFS", func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error) {
		return search.BFS[maze.Position](ps, opts...)
	}},
	{"UCS", func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error) {
		return search.UCS[maze.Position](ps, opts...)
	}},
	{"AStarNull", func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error) {
		return search.AStar[maze.Position](ps, nil, opts...)
	}},
	{"AStarManhattan", func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error) {
		return search.AStar(ps, heuristic.Manhattan(ps), opts...)
	}},
	{"EHC", func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error) {
		return search.EnforcedHillClimbing(ps, heuristic.Manhattan(ps), opts...)
	}},
	{"Bidirectional", func(ps *problem.PositionSearch, opts ...search.Option) (*search.Plan, error) {
		return search.Bidirectional(ps, heuristic.Manhattan(ps), heuristic.BackwardManhattan(ps), opts...)
	}},
}

// TestAll_Corridor checks that every algorithm walks a straight corridor.
func TestAll_Corridor(t *testing.T) {
	m := mustMaze(t, corridor)
	for _, pl := range planners {
		t.Run(pl.name, func(t *testing.T) {
			ps := mustPosition(t, m, maze.Position{X: 5, Y: 1})
			plan, err := pl.run(ps)
			require.NoError(t, err)
			assert.Equal(t, []problem.Action{east, east, east, east}, plan.Actions)
			assert.Equal(t, 4.0, plan.Cost)
			assert.Equal(t, plan.Cost, ps.CostOfActions(plan.Actions))
		})
	}
}

// TestAll_StartIsGoal checks the zero-length plan on a single open cell.
func TestAll_StartIsGoal(t *testing.T) {
	m, err := maze.Open(3, 3, maze.Position{X: 1, Y: 1})
	require.NoError(t, err)
	for _, pl := range planners {
		t.Run(pl.name, func(t *testing.T) {
			plan, err := pl.run(mustPosition(t, m, maze.Position{X: 1, Y: 1}))
			require.NoError(t, err)
			require.NotNil(t, plan.Actions, "empty, not nil")
			assert.Zero(t, plan.Len())
			assert.Zero(t, plan.Cost)
		})
	}
}

// TestAll_UniqueRoute checks that every algorithm finds the only route.
func TestAll_UniqueRoute(t *testing.T) {
	m := mustMaze(t, snake)
	for _, pl := range planners {
		t.Run(pl.name, func(t *testing.T) {
			ps := mustPosition(t, m, maze.Position{X: 6, Y: 1})
			plan, err := pl.run(ps)
			require.NoError(t, err)
			assert.Equal(t, 19, plan.Len())
			assert.Equal(t, 19.0, ps.CostOfActions(plan.Actions))
		})
	}
}

// TestAll_Unreachable checks the failure sentinel of every algorithm.
func TestAll_Unreachable(t *testing.T) {
	m := mustMaze(t, sealed)
	for _, pl := range planners {
		t.Run(pl.name, func(t *testing.T) {
			_, err := pl.run(mustPosition(t, m, maze.Position{X: 3, Y: 1}))
			if pl.name == "EHC" {
				require.ErrorIs(t, err, search.ErrNoImprovement)
				return
			}
			require.ErrorIs(t, err, search.ErrNoSolution)
		})
	}
}

// TestDFS_Order pins the LIFO expansion order: West is pushed last and
// therefore tried first.
func TestDFS_Order(t *testing.T) {
	m := mustMaze(t, openBoard)
	ps := mustPosition(t, m, maze.Position{X: 1, Y: 1})

	plan, err := search.DFS[maze.Position](ps)
	require.NoError(t, err)
	want := []problem.Action{west, west, south, east, east, east, east, south, west, west, west, west}
	require.Equal(t, want, plan.Actions)
	require.Equal(t, 12.0, plan.Cost)
	require.Equal(t, 12, plan.Expanded)
}

// TestBFS_FewestActions checks BFS depth-optimality and the expansion count.
func TestBFS_FewestActions(t *testing.T) {
	m := mustMaze(t, openBoard)
	ps := mustPosition(t, m, maze.Position{X: 1, Y: 1})

	plan, err := search.BFS[maze.Position](ps)
	require.NoError(t, err)
	require.Equal(t, []problem.Action{south, south, west, west}, plan.Actions)
	require.Equal(t, 20, plan.Expanded)
	require.Equal(t, plan.Expanded, ps.Expanded(), "problem counts the same expansions")
}

// TestUCS_Costs checks that UCS follows the cost function and BFS does not.
func TestUCS_Costs(t *testing.T) {
	m := mustMaze(t, openBoard)
	goal := maze.Position{X: 1, Y: 1}

	cases := []struct {
		name    string
		cost    problem.CostFunc
		ucsCost float64
		bfsCost float64
	}{
		{"Unit", problem.UnitCost, 4, 4},
		{"StayEast", problem.StayEastCost, 1, 1},
		{"StayWest", problem.StayWestCost, 10, 22},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps := mustPosition(t, m, goal, problem.WithCost(tc.cost))
			plan, err := search.UCS[maze.Position](ps)
			require.NoError(t, err)
			assert.InDelta(t, tc.ucsCost, plan.Cost, 1e-9)
			assert.InDelta(t, plan.Cost, ps.CostOfActions(plan.Actions), 1e-9)

			ps = mustPosition(t, m, goal, problem.WithCost(tc.cost))
			plan, err = search.BFS[maze.Position](ps)
			require.NoError(t, err)
			assert.InDelta(t, tc.bfsCost, plan.Cost, 1e-9)
		})
	}
}

// TestAStar_ExpandsLess checks optimality and that guidance prunes work.
func TestAStar_ExpandsLess(t *testing.T) {
	m := mustMaze(t, openBoard)
	goal := maze.Position{X: 1, Y: 1}

	blind, err := search.AStar[maze.Position](mustPosition(t, m, goal), nil)
	require.NoError(t, err)
	ps := mustPosition(t, m, goal)
	guided, err := search.AStar(ps, heuristic.Manhattan(ps))
	require.NoError(t, err)

	require.Equal(t, blind.Cost, guided.Cost)
	require.Equal(t, 20, blind.Expanded)
	require.Equal(t, 8, guided.Expanded)
	require.Equal(t, []problem.Action{south, south, west, west}, guided.Actions)
}

// TestAStar_TrueDistance checks the maze-distance heuristic on the snake.
func TestAStar_TrueDistance(t *testing.T) {
	m := mustMaze(t, snake)
	ps := mustPosition(t, m, maze.Position{X: 6, Y: 1})

	plan, err := search.AStar(ps, heuristic.TrueDistance(ps))
	require.NoError(t, err)
	require.Equal(t, 19, plan.Len())
	// A perfect heuristic expands only the route itself.
	require.Equal(t, 19, plan.Expanded)
}

// graph is an explicit weighted digraph over named states.
type graph struct {
	start, goal string
	edges       map[string][]problem.Successor[string]
	expanded    int
}

func (g *graph) StartState() string { return g.start }

func (g *graph) IsGoal(s string) bool { return s == g.goal }

func (g *graph) Successors(s string) []problem.Successor[string] {
	g.expanded++
	return g.edges[s]
}

func (g *graph) CostOfActions(actions []problem.Action) float64 { return float64(len(actions)) }

func (g *graph) Expanded() int { return g.expanded }

// TestAStar_Reopens checks that an inconsistent heuristic re-expands a state
// reached again at a lower cost instead of returning the first, dearer path.
func TestAStar_Reopens(t *testing.T) {
	g := &graph{start: "S", goal: "G", edges: map[string][]problem.Successor[string]{
		"S": {{State: "A", Action: east, Cost: 1}, {State: "B", Action: south, Cost: 1}},
		"A": {{State: "C", Action: south, Cost: 1}},
		"B": {{State: "C", Action: east, Cost: 2}},
		"C": {{State: "G", Action: east, Cost: 3}},
	}}
	// Admissible but not consistent: h(A) − h(C) exceeds the edge A→C.
	h := func(s string) float64 {
		if s == "A" {
			return 3
		}
		return 0
	}

	counts := map[string]int{}
	plan, err := search.AStar[string](g, h, search.WithOnExpand(func(s any, _ float64) error {
		counts[s.(string)]++
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, plan.Cost)
	assert.Equal(t, []problem.Action{east, south, east}, plan.Actions)
	assert.Equal(t, 2, counts["C"], "C is re-opened at cost 2 after cost 3")
	assert.Equal(t, 5, plan.Expanded)

	ucs, err := search.UCS[string](&graph{start: g.start, goal: g.goal, edges: g.edges})
	require.NoError(t, err)
	assert.Equal(t, ucs.Cost, plan.Cost)
}

// TestCover_Problems runs the corners and food problems through the
// optimal algorithms.
func TestCover_Problems(t *testing.T) {
	box, err := maze.Open(5, 5, maze.Position{X: 1, Y: 1})
	require.NoError(t, err)
	board := mustMaze(t, openBoard)

	t.Run("CornersFromCorner", func(t *testing.T) {
		cs, err := problem.NewCornersSearch(box)
		require.NoError(t, err)
		plan, err := search.BFS[problem.CoverState](cs)
		require.NoError(t, err)
		require.Equal(t, []problem.Action{north, north, east, east, south, south}, plan.Actions)

		cs, err = problem.NewCornersSearch(box)
		require.NoError(t, err)
		plan, err = search.AStar(cs, heuristic.NearestGoal(cs))
		require.NoError(t, err)
		require.Equal(t, 6.0, plan.Cost)
	})

	t.Run("FoodOnOpenBoard", func(t *testing.T) {
		fs, err := problem.NewFoodSearch(board)
		require.NoError(t, err)
		plan, err := search.UCS[problem.CoverState](fs)
		require.NoError(t, err)
		require.Equal(t, 16.0, plan.Cost)
		require.Equal(t, plan.Cost, fs.CostOfActions(plan.Actions))

		fs, err = problem.NewFoodSearch(board)
		require.NoError(t, err)
		plan, err = search.AStar(fs, heuristic.NearestGoalMaze(fs))
		require.NoError(t, err)
		require.Equal(t, 16.0, plan.Cost)
	})

	t.Run("FoodGreedy", func(t *testing.T) {
		fs, err := problem.NewFoodSearch(board)
		require.NoError(t, err)
		remaining := func(s problem.CoverState) float64 { return float64(fs.Remaining(s)) }
		plan, err := search.EnforcedHillClimbing(fs, remaining)
		require.NoError(t, err)
		require.Equal(t, 16.0, plan.Cost)
	})

	t.Run("SinglePelletMatchesPosition", func(t *testing.T) {
		m := mustMaze(t, "%%%%%\n%P .%\n%%%%%")
		fs, err := problem.NewFoodSearch(m)
		require.NoError(t, err)
		food, err := search.BFS[problem.CoverState](fs)
		require.NoError(t, err)
		pos, err := search.BFS[maze.Position](mustPosition(t, m, maze.Position{X: 3, Y: 1}))
		require.NoError(t, err)
		require.Equal(t, pos.Actions, food.Actions)
	})
}

// TestErrors covers argument and option validation.
func TestErrors(t *testing.T) {
	_, err := search.BFS[maze.Position](nil)
	require.ErrorIs(t, err, search.ErrNilProblem)
	_, err = search.AStar[maze.Position](nil, nil)
	require.ErrorIs(t, err, search.ErrNilProblem)
	_, err = search.EnforcedHillClimbing[maze.Position](nil, nil)
	require.ErrorIs(t, err, search.ErrNilProblem)
	_, err = search.Bidirectional[maze.Position](nil, nil, nil)
	require.ErrorIs(t, err, search.ErrNilProblem)

	m := mustMaze(t, corridor)
	ps := mustPosition(t, m, maze.Position{X: 5, Y: 1})
	for _, pl := range planners {
		_, err := pl.run(ps, search.WithMaxExpansions(-1))
		require.ErrorIs(t, err, search.ErrOptionViolation, pl.name)
	}
}

// TestBudget checks that MaxExpansions aborts long searches but leaves short
// ones alone.
func TestBudget(t *testing.T) {
	m := mustMaze(t, openBoard)
	goal := maze.Position{X: 1, Y: 1}
	for _, pl := range planners {
		t.Run(pl.name, func(t *testing.T) {
			_, err := pl.run(mustPosition(t, m, goal), search.WithMaxExpansions(2))
			require.ErrorIs(t, err, search.ErrBudgetExceeded)

			plan, err := pl.run(mustPosition(t, m, goal), search.WithMaxExpansions(1000))
			require.NoError(t, err)
			require.LessOrEqual(t, plan.Expanded, 1000)
		})
	}
}

// TestCancellation checks that a cancelled context stops every algorithm.
func TestCancellation(t *testing.T) {
	m := mustMaze(t, openBoard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, pl := range planners {
		_, err := pl.run(mustPosition(t, m, maze.Position{X: 1, Y: 1}), search.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled, pl.name)
	}
}

// TestOnExpand checks the hook sees every expansion and can abort.
func TestOnExpand(t *testing.T) {
	m := mustMaze(t, openBoard)
	goal := maze.Position{X: 1, Y: 1}

	var seen []maze.Position
	plan, err := search.BFS[maze.Position](mustPosition(t, m, goal), search.WithOnExpand(func(s any, _ float64) error {
		seen = append(seen, s.(maze.Position))
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, seen, plan.Expanded)
	require.Equal(t, maze.Position{X: 3, Y: 3}, seen[0])

	errStop := errors.New("stop")
	calls := 0
	_, err = search.UCS[maze.Position](mustPosition(t, m, goal), search.WithOnExpand(func(any, float64) error {
		calls++
		if calls == 3 {
			return errStop
		}
		return nil
	}))
	require.ErrorIs(t, err, errStop)
	require.Equal(t, 3, calls)
}

// TestLogger checks the per-search debug entry.
func TestLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	m := mustMaze(t, corridor)

	_, err := search.BFS[maze.Position](mustPosition(t, m, maze.Position{X: 5, Y: 1}), search.WithLogger(logger))
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "bfs", entry.Data["algorithm"])
	assert.Equal(t, 4, entry.Data["length"])

	_, err = search.BFS[maze.Position](mustPosition(t, mustMaze(t, sealed), maze.Position{X: 3, Y: 1}), search.WithLogger(logger))
	require.ErrorIs(t, err, search.ErrNoSolution)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), search.ErrNoSolution)
}
