package search

import (
	"math"

	"github.com/katalvlaran/lvsearch/problem"
)

// direction selects the side of a bidirectional search.
type direction int

const (
	forward direction = iota
	backward
)

func (d direction) flip() direction { return 1 - d }

// side is the per-direction state of Bidirectional.
type side[S comparable] struct {
	open   *openList[S]
	closed map[S]*node[S]
	// h estimates the cost to finish in this side's direction; hOther is
	// the opposite direction's heuristic.
	h, hOther Heuristic[S]
	succ      func(S) []problem.Successor[S]
}

// priority is 2·g(n) + h(n) − h_other(n).
func (s *side[S]) priority(n *node[S]) float64 {
	return 2*n.cost + s.h(n.state) - s.hOther(n.state)
}

func (s *side[S]) push(n *node[S]) { s.open.push(n, s.priority(n)) }

// popFresh pops until it finds a node whose state this side has not closed.
func (s *side[S]) popFresh() *node[S] {
	for s.open.len() > 0 {
		n := s.open.pop()
		if _, done := s.closed[n.state]; !done {
			return n
		}
	}
	return nil
}

// Bidirectional runs bidirectional heuristic search with front-to-front
// meeting and a provable stopping bound.
//
// The forward side is seeded with the start state, the backward side with
// every GoalStates entry. Sides alternate strictly, one expansion each,
// starting forward. A node n on a side is prioritised by
//
//	2·g(n) + h(n) − h_other(n)
//
// where h is the forward heuristic h (to the goal) on the forward side and
// hBack (to the start) on the backward side. Before each expansion the lower
// bound is the mean of both frontiers' minimum priorities. After popping a
// node, its state is looked up in the opposite frontier; a hit yields a
// candidate plan (forward path, then the backward path from the meeting
// state) and the cheapest candidate so far sets the upper bound. The search
// stops as soon as lower ≥ upper.
//
// With admissible and consistent h and hBack the returned plan is optimal
// whenever the meeting is found through the open frontier. By default only
// the opposite frontier is consulted, so a meeting on a state the other side
// already closed is missed; WithClosedMeeting also consults the closed set.
//
// If a frontier empties, the best plan found so far is returned, or
// ErrNoSolution when the sides never met. nil heuristics act as
// NullHeuristic.
func Bidirectional[S comparable](p problem.Bidirectional[S], h, hBack Heuristic[S], opts ...Option) (*Plan, error) {
	// 1) Validate input and options
	if p == nil {
		return nil, ErrNilProblem
	}
	r, err := newRunner("bidirectional", opts)
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = NullHeuristic[S]
	}
	if hBack == nil {
		hBack = NullHeuristic[S]
	}

	// 2) Build both sides; the backward one is seeded with every goal state
	sides := [2]*side[S]{
		forward: {
			open:   newOpenList[S](),
			closed: make(map[S]*node[S]),
			h:      h,
			hOther: hBack,
			succ:   p.Successors,
		},
		backward: {
			open:   newOpenList[S](),
			closed: make(map[S]*node[S]),
			h:      hBack,
			hOther: h,
			succ:   p.BackwardSuccessors,
		},
	}
	sides[forward].push(root(p.StartState()))
	for _, g := range p.GoalStates() {
		sides[backward].push(root(g))
	}

	// 3) Main loop: one expansion per side, alternating
	upper := math.Inf(1)
	var bestPlan []problem.Action
	dir := forward
	for sides[forward].open.len() > 0 && sides[backward].open.len() > 0 {
		// 3a) Lower bound from both frontiers, taken before the pop
		lower := (sides[forward].open.minPriority() + sides[backward].open.minPriority()) / 2
		self, other := sides[dir], sides[dir.flip()]

		n := self.popFresh()
		if n == nil {
			break
		}
		self.closed[n.state] = n

		// 3b) Meeting check against the other side
		if m := meet(other, n.state, r.opts.ClosedMeeting); m != nil {
			if total := n.cost + m.cost; total < upper {
				upper = total
				bestPlan = join(dir, n, m)
			}
		}
		// 3c) Stop once no unexplored plan can beat the best one
		if lower >= upper {
			return r.done(bestPlan, upper), nil
		}

		if err := r.expand(n.state, n.cost); err != nil {
			return nil, r.fail(err)
		}
		for _, succ := range self.succ(n.state) {
			if _, done := self.closed[succ.State]; done {
				continue
			}
			self.push(n.child(succ))
		}
		dir = dir.flip()
	}

	// 4) A frontier ran dry: return whatever met, if anything did
	if !math.IsInf(upper, 1) {
		return r.done(bestPlan, upper), nil
	}

	return nil, r.fail(ErrNoSolution)
}

// meet returns the cheapest node for s on the opposite side, or nil.
func meet[S comparable](other *side[S], s S, useClosed bool) *node[S] {
	m := other.open.cheapest(s)
	if !useClosed {
		return m
	}
	if c, ok := other.closed[s]; ok && (m == nil || c.cost < m.cost) {
		return c
	}
	return m
}

// join concatenates the forward half with the backward half at a meeting
// state. n was popped on side dir; m is its counterpart on the other side.
func join[S comparable](dir direction, n, m *node[S]) []problem.Action {
	fwd, bwd := n, m
	if dir == backward {
		fwd, bwd = m, n
	}
	head, tail := fwd.path(), bwd.backwardPath()
	out := make([]problem.Action, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}
