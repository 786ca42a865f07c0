package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// BidirectionalSuite exercises Bidirectional on the shared boards.
type BidirectionalSuite struct {
	suite.Suite
	board *maze.Maze
	goal  maze.Position
}

func (s *BidirectionalSuite) SetupTest() {
	m, err := maze.Parse(openBoard)
	s.Require().NoError(err)
	s.board = m
	s.goal = maze.Position{X: 1, Y: 1}
}

func (s *BidirectionalSuite) position(opts ...problem.PositionOption) *problem.PositionSearch {
	ps, err := problem.NewPositionSearch(s.board, s.goal, opts...)
	s.Require().NoError(err)
	return ps
}

// TestMeetsInTheMiddle pins the plan and expansion count with and without
// guidance.
func (s *BidirectionalSuite) TestMeetsInTheMiddle() {
	plan, err := search.Bidirectional[maze.Position](s.position(), nil, nil)
	s.Require().NoError(err)
	s.Equal([]problem.Action{west, west, south, south}, plan.Actions)
	s.Equal(4.0, plan.Cost)
	s.Equal(7, plan.Expanded)

	ps := s.position()
	plan, err = search.Bidirectional(ps, heuristic.Manhattan(ps), heuristic.BackwardManhattan(ps))
	s.Require().NoError(err)
	s.Equal([]problem.Action{south, south, west, west}, plan.Actions)
	s.Equal(6, plan.Expanded)
}

// TestAgreesWithUCS compares plan costs under every cost preset.
func (s *BidirectionalSuite) TestAgreesWithUCS() {
	for _, cost := range []problem.CostFunc{problem.UnitCost, problem.StayEastCost, problem.StayWestCost} {
		want, err := search.UCS[maze.Position](s.position(problem.WithCost(cost)))
		s.Require().NoError(err)

		for _, opts := range [][]search.Option{nil, {search.WithClosedMeeting()}} {
			ps := s.position(problem.WithCost(cost))
			got, err := search.Bidirectional[maze.Position](ps, nil, nil, opts...)
			s.Require().NoError(err)
			s.InDelta(want.Cost, got.Cost, 1e-9)
			s.InDelta(got.Cost, ps.CostOfActions(got.Actions), 1e-9, "backward half replays forward")
		}
	}
}

// TestStartIsGoal checks the zero-length plan.
func (s *BidirectionalSuite) TestStartIsGoal() {
	ps, err := problem.NewPositionSearch(s.board, maze.Position{X: 3, Y: 3})
	s.Require().NoError(err)

	plan, err := search.Bidirectional[maze.Position](ps, nil, nil)
	s.Require().NoError(err)
	s.NotNil(plan.Actions)
	s.Zero(plan.Len())
	s.Zero(plan.Expanded)
}

// TestCovers runs the corners and food problems from both ends.
func (s *BidirectionalSuite) TestCovers() {
	cs, err := problem.NewCornersSearch(s.board)
	s.Require().NoError(err)
	plan, err := search.Bidirectional(cs, heuristic.NearestGoal(cs), heuristic.DistanceToStart(cs))
	s.Require().NoError(err)
	s.Equal(16.0, plan.Cost)
	s.Equal(plan.Cost, cs.CostOfActions(plan.Actions))

	fs, err := problem.NewFoodSearch(s.board)
	s.Require().NoError(err)
	plan, err = search.Bidirectional(fs, heuristic.NearestGoalMaze(fs), heuristic.DistanceToStartMaze(fs),
		search.WithClosedMeeting())
	s.Require().NoError(err)
	s.Equal(16.0, plan.Cost)
	s.Equal(plan.Cost, fs.CostOfActions(plan.Actions))
}

// TestBudget checks that the expansion cap spans both directions.
func (s *BidirectionalSuite) TestBudget() {
	_, err := search.Bidirectional[maze.Position](s.position(), nil, nil, search.WithMaxExpansions(3))
	s.Require().ErrorIs(err, search.ErrBudgetExceeded)
}

func TestBidirectionalSuite(t *testing.T) {
	suite.Run(t, new(BidirectionalSuite))
}

// TestBidirectional_CoverStartIsGoal checks a food problem without food.
func TestBidirectional_CoverStartIsGoal(t *testing.T) {
	m, err := maze.Open(4, 4, maze.Position{X: 1, Y: 1})
	require.NoError(t, err)
	fs, err := problem.NewFoodSearch(m)
	require.NoError(t, err)

	plan, err := search.Bidirectional[problem.CoverState](fs, nil, nil)
	require.NoError(t, err)
	require.Zero(t, plan.Len())
}
