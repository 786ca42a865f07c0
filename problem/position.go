package problem

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/maze"
)

// PositionSearch finds a path to a single cell, or, when built with
// NewAnyFoodSearch, to any cell holding food. States are maze.Position.
type PositionSearch struct {
	expansions[maze.Position]
	layout Layout
	start  maze.Position
	goals  []maze.Position
	isGoal func(maze.Position) bool
	cost   CostFunc
	cache  *DistanceCache
}

// PositionOption configures a PositionSearch.
type PositionOption func(*PositionSearch)

// WithStart overrides the layout start cell.
func WithStart(p maze.Position) PositionOption {
	return func(ps *PositionSearch) { ps.start = p }
}

// WithCost sets the per-step cost function. nil keeps UnitCost.
func WithCost(fn CostFunc) PositionOption {
	return func(ps *PositionSearch) {
		if fn != nil {
			ps.cost = fn
		}
	}
}

// NewPositionSearch builds a single-goal problem on l.
// Returns ErrNilLayout, ErrStartIsWall or ErrGoalIsWall.
func NewPositionSearch(l Layout, goal maze.Position, opts ...PositionOption) (*PositionSearch, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	if l.IsWall(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalIsWall, goal)
	}
	ps := newPosition(l, opts)
	ps.goals = []maze.Position{goal}
	ps.isGoal = func(p maze.Position) bool { return p == goal }

	if err := ps.validate(); err != nil {
		return nil, err
	}

	return ps, nil
}

// NewAnyFoodSearch builds a problem whose goal is any food cell of l.
// GoalStates lists every food cell.
func NewAnyFoodSearch(l Layout, opts ...PositionOption) (*PositionSearch, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	ps := newPosition(l, opts)
	ps.goals = l.Food()
	ps.isGoal = l.HasFood

	if err := ps.validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

func newPosition(l Layout, opts []PositionOption) *PositionSearch {
	ps := &PositionSearch{
		layout: l,
		start:  l.Start(),
		cost:   UnitCost,
		cache:  NewDistanceCache(),
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

func (ps *PositionSearch) validate() error {
	if ps.layout.IsWall(ps.start) {
		return fmt.Errorf("%w: %v", ErrStartIsWall, ps.start)
	}
	return nil
}

// StartState returns the start cell.
func (ps *PositionSearch) StartState() maze.Position { return ps.start }

// IsGoal reports whether p is a goal cell.
func (ps *PositionSearch) IsGoal(p maze.Position) bool { return ps.isGoal(p) }

// Goals returns the goal cells.
func (ps *PositionSearch) Goals() []maze.Position {
	out := make([]maze.Position, len(ps.goals))
	copy(out, ps.goals)
	return out
}

// GoalStates implements Bidirectional.
func (ps *PositionSearch) GoalStates() []maze.Position { return ps.Goals() }

// Layout returns the underlying board.
func (ps *PositionSearch) Layout() Layout { return ps.layout }

// Cache returns the per-problem distance memo.
func (ps *PositionSearch) Cache() *DistanceCache { return ps.cache }

// Successors returns the open neighbours of p in N, S, E, W order; each step
// costs the price of the cell entered.
func (ps *PositionSearch) Successors(p maze.Position) []Successor[maze.Position] {
	ps.record(p)
	out := make([]Successor[maze.Position], 0, len(Directions))
	for _, a := range Directions {
		next, ok := step(ps.layout, p, a)
		if !ok {
			continue
		}
		out = append(out, Successor[maze.Position]{State: next, Action: a, Cost: ps.cost(next)})
	}
	return out
}

// BackwardSuccessors returns the open neighbours A of p, each labelled with
// the action moving A onto p and priced at the cost of entering p.
func (ps *PositionSearch) BackwardSuccessors(p maze.Position) []Successor[maze.Position] {
	ps.record(p)
	out := make([]Successor[maze.Position], 0, len(Directions))
	for _, a := range Directions {
		prev, ok := step(ps.layout, p, a)
		if !ok {
			continue
		}
		out = append(out, Successor[maze.Position]{State: prev, Action: a.Reverse(), Cost: ps.cost(p)})
	}
	return out
}

// CostOfActions walks actions from the start cell.
func (ps *PositionSearch) CostOfActions(actions []Action) float64 {
	p := ps.start
	cost := 0.0
	for _, a := range actions {
		if a == Stop {
			continue
		}
		next, ok := step(ps.layout, p, a)
		if !ok {
			return InfeasibleCost
		}
		p = next
		cost += ps.cost(p)
	}

	return cost
}

var _ Bidirectional[maze.Position] = (*PositionSearch)(nil)
