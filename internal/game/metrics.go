package game

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports simulation counters to Prometheus. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	tickDuration prometheus.Histogram
	ticks        prometheus.Counter
	live         *prometheus.GaugeVec
	drops        *prometheus.CounterVec
	kills        *prometheus.CounterVec
	doorsOpened  prometheus.Counter
	shipDeaths   prometheus.Counter
}

// NewMetrics builds the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	const ns = "voidrunner"
	m := &Metrics{
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one simulation tick.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "ticks_total",
			Help:      "Simulation ticks run.",
		}),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "pool_live",
			Help:      "Live slots per entity pool after the last tick.",
		}, []string{"pool"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "pool_dropped_total",
			Help:      "Spawns dropped because their pool was full.",
		}, []string{"pool"}),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "baddie_kills_total",
			Help:      "Baddies destroyed, by kind.",
		}, []string{"kind"}),
		doorsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "doors_opened_total",
			Help:      "Doors opened.",
		}),
		shipDeaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "ship_deaths_total",
			Help:      "Times the ship was destroyed.",
		}),
	}
	reg.MustRegister(m.tickDuration, m.ticks, m.live, m.drops, m.kills, m.doorsOpened, m.shipDeaths)
	return m
}

func (m *Metrics) observeTick(d time.Duration, s *Space) {
	if m == nil {
		return
	}
	m.tickDuration.Observe(d.Seconds())
	m.ticks.Inc()
	for name, n := range s.PoolCounts() {
		m.live.WithLabelValues(name).Set(float64(n))
	}
}

func (m *Metrics) dropped(pool string) {
	if m != nil {
		m.drops.WithLabelValues(pool).Inc()
	}
}

func (m *Metrics) killed(kind string) {
	if m != nil {
		m.kills.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) doorOpened() {
	if m != nil {
		m.doorsOpened.Inc()
	}
}

func (m *Metrics) shipDied() {
	if m != nil {
		m.shipDeaths.Inc()
	}
}
