package search

import "github.com/katalvlaran/lvsearch/problem"

// AStar runs A* with priority g(n) + h(n). A nil heuristic behaves like
// NullHeuristic, reducing A* to uniform-cost search.
//
// A popped state is expanded if it was never expanded, or if it arrives
// with a strictly lower cost than the best recorded expansion of it. With a
// consistent heuristic the second case never fires; with an inconsistent
// one it re-opens states instead of returning a suboptimal plan.
//
// Exhausting the frontier returns ErrNoSolution. On a connected board this
// indicates a broken problem definition rather than a runtime condition.
func AStar[S comparable](p problem.Problem[S], h Heuristic[S], opts ...Option) (*Plan, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	r, err := newRunner("astar", opts)
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = NullHeuristic[S]
	}

	best := make(map[S]float64)
	pq := &priorityQueue[S]{}
	start := root(p.StartState())
	pq.push(start, h(start.state))
	for pq.len() > 0 {
		n := pq.pop()
		if g, seen := best[n.state]; seen && n.cost >= g {
			continue
		}
		best[n.state] = n.cost
		if p.IsGoal(n.state) {
			return r.done(n.path(), n.cost), nil
		}
		if err := r.expand(n.state, n.cost); err != nil {
			return nil, r.fail(err)
		}
		for _, succ := range p.Successors(n.state) {
			c := n.child(succ)
			if g, seen := best[c.state]; seen && c.cost >= g {
				continue
			}
			pq.push(c, c.cost+h(c.state))
		}
	}

	return nil, r.fail(ErrNoSolution)
}
