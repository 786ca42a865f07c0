package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrNotRegistered is returned by accessors used before Register.
var ErrNotRegistered = errors.New("agent: no board registered")

// Agent computes one plan per board and replays it action by action.
type Agent struct {
	cfg     Config
	sel     selection
	ctx     context.Context
	logger  logrus.FieldLogger
	metrics *Metrics

	plan    *search.Plan
	elapsed time.Duration
	next    int
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the logger that receives one entry per Register.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Agent) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records every Register on m.
func WithMetrics(m *Metrics) Option {
	return func(a *Agent) { a.metrics = m }
}

// WithContext bounds every search run by Register.
func WithContext(ctx context.Context) Option {
	return func(a *Agent) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// New validates cfg and returns an Agent ready for Register.
// Returns ErrConfig if cfg is invalid.
func New(cfg Config, opts ...Option) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sel, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	a := &Agent{cfg: cfg, sel: sel, ctx: context.Background(), logger: quiet}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Config returns the configuration the agent was built with.
func (a *Agent) Config() Config { return a.cfg }

// Register computes the plan for m and rewinds the replay cursor. On error
// the previous plan is discarded and Next returns Stop.
func (a *Agent) Register(m *maze.Maze) error {
	if m == nil {
		return problem.ErrNilLayout
	}
	a.plan, a.next = nil, 0

	began := time.Now()
	plan, err := a.compute(m)
	a.elapsed = time.Since(began)
	a.metrics.observe(a.sel.algorithm, plan, a.elapsed.Seconds(), err)

	log := a.logger.WithFields(logrus.Fields{
		"algorithm": a.sel.algorithm.String(),
		"problem":   a.sel.problem.String(),
		"elapsed":   a.elapsed,
	})
	if err != nil {
		log.WithError(err).Warn("agent: planning failed")
		return fmt.Errorf("agent: %s on %s: %w", a.sel.algorithm, a.sel.problem, err)
	}
	log.WithFields(logrus.Fields{
		"cost":     plan.Cost,
		"expanded": plan.Expanded,
		"length":   plan.Len(),
	}).Info("agent: plan found")
	a.plan = plan

	return nil
}

// Next returns the next planned action, or problem.Stop once the plan is
// spent or when no plan exists.
func (a *Agent) Next() problem.Action {
	if a.plan == nil || a.next >= len(a.plan.Actions) {
		return problem.Stop
	}
	act := a.plan.Actions[a.next]
	a.next++
	return act
}

// Plan returns the current plan.
func (a *Agent) Plan() (*search.Plan, error) {
	if a.plan == nil {
		return nil, ErrNotRegistered
	}
	return a.plan, nil
}

// Cost returns the total cost of the current plan, or 0 without one.
func (a *Agent) Cost() float64 {
	if a.plan == nil {
		return 0
	}
	return a.plan.Cost
}

// Expanded returns the nodes expanded to compute the current plan.
func (a *Agent) Expanded() int {
	if a.plan == nil {
		return 0
	}
	return a.plan.Expanded
}

// Elapsed returns the duration of the last Register.
func (a *Agent) Elapsed() time.Duration { return a.elapsed }

func (a *Agent) searchOptions() []search.Option {
	opts := []search.Option{
		search.WithContext(a.ctx),
		search.WithMaxExpansions(a.cfg.MaxExpansions),
		search.WithLogger(a.logger),
	}
	if a.cfg.ClosedMeeting {
		opts = append(opts, search.WithClosedMeeting())
	}
	return opts
}

// resultLabel maps a planning outcome to a metrics label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, search.ErrNoSolution), errors.Is(err, search.ErrNoImprovement):
		return "no_solution"
	case errors.Is(err, search.ErrBudgetExceeded):
		return "budget"
	default:
		return "error"
	}
}
