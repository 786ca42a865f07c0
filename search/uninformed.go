package search

import "github.com/katalvlaran/lvsearch/problem"

// DFS runs graph-search depth-first: a LIFO frontier with visited-set
// gating. Complete on finite state spaces, not optimal.
func DFS[S comparable](p problem.Problem[S], opts ...Option) (*Plan, error) {
	return graphSearch(p, "dfs", &stack[S]{}, nil, opts)
}

// BFS runs graph-search breadth-first: a FIFO frontier with visited-set
// gating. Optimal when every step costs the same.
func BFS[S comparable](p problem.Problem[S], opts ...Option) (*Plan, error) {
	return graphSearch(p, "bfs", &queue[S]{}, nil, opts)
}

// UCS runs uniform-cost search: a priority frontier ordered by accumulated
// cost, ties in insertion order. Optimal for non-negative step costs.
func UCS[S comparable](p problem.Problem[S], opts ...Option) (*Plan, error) {
	return graphSearch(p, "ucs", &priorityQueue[S]{}, func(n *node[S]) float64 { return n.cost }, opts)
}

// graphSearch is the skeleton shared by DFS, BFS and UCS. A popped node is
// expanded only if its state has not been visited; on expansion the state is
// marked visited and goal-tested, and unvisited successors are pushed.
func graphSearch[S comparable](
	p problem.Problem[S],
	name string,
	f frontier[S],
	priority func(*node[S]) float64,
	opts []Option,
) (*Plan, error) {
	// 1) Validate input and options
	if p == nil {
		return nil, ErrNilProblem
	}
	r, err := newRunner(name, opts)
	if err != nil {
		return nil, err
	}
	if priority == nil {
		priority = func(*node[S]) float64 { return 0 }
	}

	// 2) Seed the frontier with the start state
	visited := make(map[S]struct{})
	f.push(root(p.StartState()), 0)

	// 3) Main loop until the frontier empties
	for f.len() > 0 {
		n := f.pop()
		if _, seen := visited[n.state]; seen {
			continue
		}
		visited[n.state] = struct{}{}
		if p.IsGoal(n.state) {
			return r.done(n.path(), n.cost), nil
		}
		if err := r.expand(n.state, n.cost); err != nil {
			return nil, r.fail(err)
		}
		// 4) Push successors not yet visited
		for _, succ := range p.Successors(n.state) {
			if _, seen := visited[succ.State]; seen {
				continue
			}
			c := n.child(succ)
			f.push(c, priority(c))
		}
	}

	return nil, r.fail(ErrNoSolution)
}
