// Package search provides tunable options, result types and sentinel errors
// for the state-space search algorithms.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/problem"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNoSolution is returned when the frontier empties without a goal.
	// It is distinct from a successful zero-length plan.
	ErrNoSolution = errors.New("search: no solution")

	// ErrBudgetExceeded is returned when MaxExpansions is reached.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")

	// ErrNoImprovement is returned by EnforcedHillClimbing when no state
	// reachable from a plateau has a strictly smaller heuristic value.
	ErrNoImprovement = errors.New("search: no state with a smaller heuristic is reachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Heuristic estimates the remaining cost from a state. It must be pure and
// non-negative; A* and bidirectional search are optimal only when it is
// admissible (and consistent, for the bidirectional stopping bound).
type Heuristic[S comparable] func(state S) float64

// NullHeuristic returns 0 for every state.
func NullHeuristic[S comparable](S) float64 { return 0 }

// Plan is a successful search result.
//   - Actions: moves from the start state to a goal, in order. Empty (not
//     nil) when the start already satisfies the goal test.
//   - Cost: accumulated step cost of Actions.
//   - Expanded: nodes expanded by this call.
type Plan struct {
	Actions  []problem.Action
	Cost     float64
	Expanded int
}

// Len returns the number of actions.
func (p *Plan) Len() int { return len(p.Actions) }

// Option configures search behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every algorithm.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrBudgetExceeded once that many
	// nodes have been expanded. 0 disables the cap.
	MaxExpansions int

	// OnExpand is called before a node's successors are generated.
	// Returning an error aborts the search with that error wrapped.
	OnExpand func(state any, cost float64) error

	// Logger receives a debug entry per finished search.
	Logger logrus.FieldLogger

	// ClosedMeeting makes Bidirectional also detect meetings against the
	// opposite direction's closed set, not only its open frontier.
	ClosedMeeting bool

	// internal error recorded during option parsing
	err error
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion cap
//   - a no-op OnExpand hook
//   - a logger that discards everything
//   - frontier-only bidirectional meetings
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(any, float64) error { return nil },
		Logger:        discardLogger,
		ClosedMeeting: false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded nodes.
//
//	n > 0:  abort with ErrBudgetExceeded after n expansions
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(state any, cost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger used for per-search debug entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClosedMeeting enables meeting detection against the opposite closed
// set in Bidirectional.
func WithClosedMeeting() Option {
	return func(o *Options) {
		o.ClosedMeeting = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
