package search

import "github.com/katalvlaran/lvsearch/problem"

// EnforcedHillClimbing repeatedly runs a breadth-first "improve" step from
// the current node until the current state is a goal. improve returns the
// first node, in BFS order, whose heuristic value is strictly smaller than
// the current one; the plan is the concatenation of those BFS paths.
//
// Precondition: every non-goal state must reach some state with a strictly
// smaller heuristic (h(goal) == 0 and h > 0 elsewhere is sufficient when the
// goal is reachable). If a plateau has no escape, improve exhausts its
// region and the search returns ErrNoImprovement; on infinite spaces use
// WithMaxExpansions to bound the loop.
func EnforcedHillClimbing[S comparable](p problem.Problem[S], h Heuristic[S], opts ...Option) (*Plan, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	r, err := newRunner("ehc", opts)
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = NullHeuristic[S]
	}

	cur := root(p.StartState())
	for !p.IsGoal(cur.state) {
		next, err := improve(p, h, r, cur)
		if err != nil {
			return nil, r.fail(err)
		}
		cur = next
	}

	return r.done(cur.path(), cur.cost), nil
}

// improve is a BFS from from that stops at the first strictly better node.
func improve[S comparable](p problem.Problem[S], h Heuristic[S], r *runner, from *node[S]) (*node[S], error) {
	target := h(from.state)
	visited := make(map[S]struct{})
	q := &queue[S]{}
	q.push(from, 0)
	for q.len() > 0 {
		n := q.pop()
		if _, seen := visited[n.state]; seen {
			continue
		}
		visited[n.state] = struct{}{}
		if h(n.state) < target {
			return n, nil
		}
		if err := r.expand(n.state, n.cost); err != nil {
			return nil, err
		}
		for _, succ := range p.Successors(n.state) {
			if _, seen := visited[succ.State]; !seen {
				q.push(n.child(succ), 0)
			}
		}
	}

	return nil, ErrNoImprovement
}
