package agent

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// ClosestDot eats every pellet of m greedily: it runs breadth-first search
// to the nearest pellet, walks there, and repeats until no food is left.
// The plan is not optimal, but each leg is. Expanded sums all legs, and
// WithMaxExpansions caps that sum rather than each leg.
func ClosestDot(m *maze.Maze, opts ...search.Option) (*search.Plan, error) {
	if m == nil {
		return nil, problem.ErrNilLayout
	}
	return planClosestDot(m, opts)
}

func planClosestDot(m *maze.Maze, opts []search.Option) (*search.Plan, error) {
	budget := search.DefaultOptions()
	for _, opt := range opts {
		opt(&budget)
	}

	out := &search.Plan{Actions: []problem.Action{}}
	cur, err := eat(m, m.Start())
	if err != nil {
		return nil, err
	}
	for cur.FoodCount() > 0 {
		// 1) Spend only what earlier legs left of the budget
		legOpts := opts
		if budget.MaxExpansions > 0 {
			remaining := budget.MaxExpansions - out.Expanded
			if remaining <= 0 {
				return nil, fmt.Errorf("agent: closest dot from %v: %w: %d expansions spent with %d pellets left",
					cur.Start(), search.ErrBudgetExceeded, out.Expanded, cur.FoodCount())
			}
			legOpts = append(append([]search.Option{}, opts...), search.WithMaxExpansions(remaining))
		}

		// 2) Run one optimal leg to the nearest pellet
		ps, err := problem.NewAnyFoodSearch(cur)
		if err != nil {
			return nil, err
		}
		leg, err := search.BFS[maze.Position](ps, legOpts...)
		if err != nil {
			return nil, fmt.Errorf("agent: closest dot from %v: %w", cur.Start(), err)
		}
		out.Actions = append(out.Actions, leg.Actions...)
		out.Cost += leg.Cost
		out.Expanded += leg.Expanded

		// 3) Eat along the way and restart from the end of the leg
		if cur, err = walk(cur, leg.Actions); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// walk replays actions from the start of m, eating every pellet on the way,
// and returns the board as seen from the final cell.
func walk(m *maze.Maze, actions []problem.Action) (*maze.Maze, error) {
	p := m.Start()
	cells := make([]maze.Position, 0, len(actions))
	for _, a := range actions {
		dx, dy := a.Vector()
		p = p.Add(dx, dy)
		cells = append(cells, p)
	}
	next, err := eat(m, cells...)
	if err != nil {
		return nil, err
	}
	return next.WithStart(p)
}

// eat returns m without the food on cells.
func eat(m *maze.Maze, cells ...maze.Position) (*maze.Maze, error) {
	gone := make(map[maze.Position]struct{}, len(cells))
	for _, c := range cells {
		gone[c] = struct{}{}
	}
	left := make([]maze.Position, 0, m.FoodCount())
	for _, f := range m.Food() {
		if _, ok := gone[f]; !ok {
			left = append(left, f)
		}
	}
	if len(left) == m.FoodCount() {
		return m, nil
	}

	return m.WithFood(left...)
}
