package problem

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/maze"
)

// CoverState is a position plus the set of goal cells visited so far.
type CoverState struct {
	Pos     maze.Position
	Visited GoalSet
}

// String renders the state for logs and test failures.
func (s CoverState) String() string {
	return fmt.Sprintf("(%d,%d)%v", s.Pos.X, s.Pos.Y, s.Visited)
}

// cover implements the "visit every goal cell in any order" problem shared
// by CornersSearch and FoodSearch. Goal i is goals[i]; step cost is 1.
type cover struct {
	expansions[CoverState]
	layout Layout
	start  CoverState
	goals  []maze.Position
	index  map[maze.Position]int
	full   GoalSet
	cache  *DistanceCache
}

func newCover(l Layout, start maze.Position, goals []maze.Position) (cover, error) {
	if l.IsWall(start) {
		return cover{}, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}
	c := cover{
		layout: l,
		index:  make(map[maze.Position]int, len(goals)),
		cache:  NewDistanceCache(),
	}
	for _, g := range goals {
		if _, dup := c.index[g]; dup {
			continue
		}
		c.index[g] = len(c.goals)
		c.goals = append(c.goals, g)
	}
	c.full = FullGoalSet(len(c.goals))
	c.start = CoverState{Pos: start, Visited: c.enter(GoalSet(""), start)}

	return c, nil
}

// enter returns v updated for stepping onto p.
func (c *cover) enter(v GoalSet, p maze.Position) GoalSet {
	if i, ok := c.index[p]; ok {
		return v.With(i)
	}
	return v
}

// StartState returns the start cell with the start goal, if any, visited.
func (c *cover) StartState() CoverState { return c.start }

// IsGoal reports whether every goal cell has been visited.
func (c *cover) IsGoal(s CoverState) bool { return s.Visited == c.full }

// Goals returns the goal cells in index order.
func (c *cover) Goals() []maze.Position {
	out := make([]maze.Position, len(c.goals))
	copy(out, c.goals)
	return out
}

// Unvisited returns the goal cells not yet in s.Visited.
func (c *cover) Unvisited(s CoverState) []maze.Position {
	out := make([]maze.Position, 0, len(c.goals)-s.Visited.Len())
	for i, g := range c.goals {
		if !s.Visited.Has(i) {
			out = append(out, g)
		}
	}
	return out
}

// Layout returns the underlying board.
func (c *cover) Layout() Layout { return c.layout }

// Cache returns the per-problem distance memo.
func (c *cover) Cache() *DistanceCache { return c.cache }

// GoalStates pairs every goal cell with the full visited set. A problem
// without goals has its start state as the only goal state.
func (c *cover) GoalStates() []CoverState {
	if len(c.goals) == 0 {
		return []CoverState{c.start}
	}
	out := make([]CoverState, 0, len(c.goals))
	for _, g := range c.goals {
		out = append(out, CoverState{Pos: g, Visited: c.full})
	}
	return out
}

// Successors moves in N, S, E, W order and marks a goal cell visited on entry.
func (c *cover) Successors(s CoverState) []Successor[CoverState] {
	c.record(s)
	out := make([]Successor[CoverState], 0, len(Directions))
	for _, a := range Directions {
		next, ok := step(c.layout, s.Pos, a)
		if !ok {
			continue
		}
		out = append(out, Successor[CoverState]{
			State:  CoverState{Pos: next, Visited: c.enter(s.Visited, next)},
			Action: a,
			Cost:   1,
		})
	}

	return out
}

// BackwardSuccessors enumerates every consistent predecessor of s.
//
// When s sits on goal i, the forward step onto it either just added i or i
// was visited earlier, so both Visited and Visited\{i} are candidates. A
// candidate standing on goal j must contain j. States on an unvisited goal
// are unreachable and have no predecessors.
func (c *cover) BackwardSuccessors(s CoverState) []Successor[CoverState] {
	c.record(s)
	candidates := []GoalSet{s.Visited}
	if i, ok := c.index[s.Pos]; ok {
		if !s.Visited.Has(i) {
			return nil
		}
		candidates = append(candidates, s.Visited.Without(i))
	}
	out := make([]Successor[CoverState], 0, len(Directions)*len(candidates))
	for _, a := range Directions {
		prev, ok := step(c.layout, s.Pos, a)
		if !ok {
			continue
		}
		j, onGoal := c.index[prev]
		for _, v := range candidates {
			if onGoal && !v.Has(j) {
				continue
			}
			out = append(out, Successor[CoverState]{
				State:  CoverState{Pos: prev, Visited: v},
				Action: a.Reverse(),
				Cost:   1,
			})
		}
	}

	return out
}

// CostOfActions returns the number of moves, or InfeasibleCost on a wall hit.
func (c *cover) CostOfActions(actions []Action) float64 {
	p := c.start.Pos
	cost := 0.0
	for _, a := range actions {
		if a == Stop {
			continue
		}
		next, ok := step(c.layout, p, a)
		if !ok {
			return InfeasibleCost
		}
		p = next
		cost++
	}

	return cost
}

// CornersSearch visits the four inner corners of the board in any order.
type CornersSearch struct {
	cover
}

// NewCornersSearch builds a corners problem starting at the layout start.
// Corners are (1,1), (1,H-2), (W-2,1) and (W-2,H-2); coincident corners on
// narrow boards collapse into one goal.
// Returns ErrNilLayout, ErrStartIsWall or ErrCornerIsWall.
func NewCornersSearch(l Layout) (*CornersSearch, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	top, right := l.Height()-2, l.Width()-2
	corners := []maze.Position{{X: 1, Y: 1}, {X: 1, Y: top}, {X: right, Y: 1}, {X: right, Y: top}}
	for _, p := range corners {
		if l.IsWall(p) {
			return nil, fmt.Errorf("%w: %v", ErrCornerIsWall, p)
		}
	}
	c, err := newCover(l, l.Start(), corners)
	if err != nil {
		return nil, err
	}

	return &CornersSearch{cover: c}, nil
}

// Corners returns the distinct corner cells.
func (cs *CornersSearch) Corners() []maze.Position { return cs.Goals() }

// FoodSearch eats every food pellet of the board in any order.
type FoodSearch struct {
	cover
}

// NewFoodSearch builds a food problem from the layout start and food.
// Returns ErrNilLayout or ErrStartIsWall.
func NewFoodSearch(l Layout) (*FoodSearch, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	c, err := newCover(l, l.Start(), l.Food())
	if err != nil {
		return nil, err
	}
	return &FoodSearch{cover: c}, nil
}

// Remaining returns the number of pellets left in s.
func (fs *FoodSearch) Remaining(s CoverState) int {
	return len(fs.goals) - s.Visited.Len()
}

var (
	_ Bidirectional[CoverState] = (*CornersSearch)(nil)
	_ Bidirectional[CoverState] = (*FoodSearch)(nil)
)
