// Package metrics exposes Prometheus collectors for a running trick.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors a trick reports to.
type Metrics struct {
	Generations   prometheus.Counter
	Frames        prometheus.Counter
	VisitedStates prometheus.Gauge
	Cycling       prometheus.Gauge
	Period        prometheus.Gauge
	StaleFrames   prometheus.Gauge
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Generations stepped by the engine",
		}),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_frames_total",
			Help: "Frames handed to the host",
		}),
		VisitedStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_visited_states",
			Help: "Distinct generations recorded for cycle detection",
		}),
		Cycling: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_cycling",
			Help: "1 once a generation has repeated",
		}),
		Period: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_cycle_period",
			Help: "Length of the detected cycle in generations",
		}),
		StaleFrames: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_stale_frames_remaining",
			Help: "Frames left before the trick finishes",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Generations, m.Frames, m.VisitedStates, m.Cycling, m.Period, m.StaleFrames)
	}
	return m
}
