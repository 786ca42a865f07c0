package search

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/problem"
)

// node is one entry of the search tree. It is immutable once created and
// reaches the root through parent; the root has a nil parent and its action
// is meaningless.
type node[S comparable] struct {
	state  S
	action problem.Action
	cost   float64
	depth  int
	parent *node[S]
}

func root[S comparable](s S) *node[S] {
	return &node[S]{state: s}
}

// child extends n by one successor edge.
func (n *node[S]) child(succ problem.Successor[S]) *node[S] {
	return &node[S]{
		state:  succ.State,
		action: succ.Action,
		cost:   n.cost + succ.Cost,
		depth:  n.depth + 1,
		parent: n,
	}
}

// path returns the actions from the root to n, in order.
func (n *node[S]) path() []problem.Action {
	out := make([]problem.Action, n.depth)
	for cur, i := n, n.depth-1; cur.parent != nil; cur, i = cur.parent, i-1 {
		out[i] = cur.action
	}
	return out
}

// backwardPath returns the actions from n to the root of a backward tree.
// Backward edges already carry forward actions, so the walk order is the
// execution order.
func (n *node[S]) backwardPath() []problem.Action {
	out := make([]problem.Action, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		out = append(out, cur.action)
	}
	return out
}

// runner holds per-call bookkeeping shared by every algorithm.
type runner struct {
	name     string
	opts     Options
	expanded int
	began    time.Time
}

func newRunner(name string, opts []Option) (*runner, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &runner{name: name, opts: o, began: time.Now()}, nil
}

// expand checks cancellation and the budget, runs OnExpand and counts the
// expansion. It is called right before successors are generated.
func (r *runner) expand(state any, cost float64) error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}
	if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: %s stopped after %d expansions", ErrBudgetExceeded, r.name, r.expanded)
	}
	if err := r.opts.OnExpand(state, cost); err != nil {
		return fmt.Errorf("search: OnExpand error at %v: %w", state, err)
	}
	r.expanded++
	return nil
}

// done logs the outcome and builds the plan for a successful search.
func (r *runner) done(actions []problem.Action, cost float64) *Plan {
	r.opts.Logger.WithFields(logrus.Fields{
		"algorithm": r.name,
		"expanded":  r.expanded,
		"cost":      cost,
		"length":    len(actions),
		"elapsed":   time.Since(r.began),
	}).Debug("search: plan found")
	return &Plan{Actions: actions, Cost: cost, Expanded: r.expanded}
}

// fail logs and returns err.
func (r *runner) fail(err error) error {
	r.opts.Logger.WithFields(logrus.Fields{
		"algorithm": r.name,
		"expanded":  r.expanded,
		"elapsed":   time.Since(r.began),
	}).WithError(err).Debug("search: failed")
	return err
}
