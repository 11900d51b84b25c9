// Package metrics wires the simulator's tick loop to Prometheus: how long
// a step takes, how many agents sit in each state, and how many
// reservations get acquired.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors cmd/navsim registers and the simulator
// updates once per tick.
type Metrics struct {
	tickDuration    prometheus.Histogram
	agentsByState   *prometheus.GaugeVec
	reservationsAcq prometheus.Counter
}

// New builds a Metrics and registers its collectors against reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "navsim_tick_duration_seconds",
			Help:    "Wall-clock time spent in one Simulator.Step call.",
			Buckets: prometheus.DefBuckets,
		}),
		agentsByState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "navsim_agents",
			Help: "Number of agents currently in each state.",
		}, []string{"state"}),
		reservationsAcq: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "navsim_reservations_acquired_total",
			Help: "Number of seat reservations acquired across all plans.",
		}),
	}
	reg.MustRegister(m.tickDuration, m.agentsByState, m.reservationsAcq)
	return m
}

// ObserveTick records how long a single Step call took.
func (m *Metrics) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

// SetAgentsByState sets the current count of agents in state.
func (m *Metrics) SetAgentsByState(state string, count int) {
	m.agentsByState.WithLabelValues(state).Set(float64(count))
}

// AddReservationsAcquired increments the reservation counter by n.
func (m *Metrics) AddReservationsAcquired(n int) {
	m.reservationsAcq.Add(float64(n))
}
