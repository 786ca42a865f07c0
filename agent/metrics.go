package agent

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvsearch/search"
)

// Metrics records planning outcomes. The zero value is not usable; build it
// with NewMetrics. A nil *Metrics records nothing.
type Metrics struct {
	plans    *prometheus.CounterVec
	expanded *prometheus.CounterVec
	cost     *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the planner metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		// plans counts planning calls.
		// Labels: algorithm, result (ok, no_solution, budget, error)
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvsearch",
			Subsystem: "agent",
			Name:      "plans_total",
			Help:      "Total planning calls by algorithm and result",
		}, []string{"algorithm", "result"}),

		// expanded counts search nodes expanded by successful plans.
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvsearch",
			Subsystem: "agent",
			Name:      "nodes_expanded_total",
			Help:      "Total search nodes expanded by successful plans",
		}, []string{"algorithm"}),

		cost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvsearch",
			Subsystem: "agent",
			Name:      "plan_cost",
			Help:      "Distribution of plan costs",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvsearch",
			Subsystem: "agent",
			Name:      "plan_duration_seconds",
			Help:      "Planning latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{m.plans, m.expanded, m.cost, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(alg Algorithm, plan *search.Plan, seconds float64, err error) {
	if m == nil {
		return
	}
	name := alg.String()
	m.plans.WithLabelValues(name, resultLabel(err)).Inc()
	m.duration.WithLabelValues(name).Observe(seconds)
	if err != nil {
		return
	}
	m.expanded.WithLabelValues(name).Add(float64(plan.Expanded))
	m.cost.WithLabelValues(name).Observe(plan.Cost)
}
