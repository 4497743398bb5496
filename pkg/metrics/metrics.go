package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the planner's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ItinerariesGenerated prometheus.Counter
	ActivitiesPerDay     prometheus.Histogram
	DroppedSlots         prometheus.Counter
	SessionTransitions   *prometheus.CounterVec
	ShareLinks           *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ItinerariesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "travelplanner",
			Name:      "itineraries_generated_total",
			Help:      "Itineraries produced by the sampler.",
		}),
		ActivitiesPerDay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "travelplanner",
			Name:      "activities_per_day",
			Help:      "Activities placed on each generated day.",
			Buckets:   []float64{0, 1, 2, 3, 4},
		}),
		DroppedSlots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "travelplanner",
			Name:      "dropped_activity_slots_total",
			Help:      "Activity slots left empty after repeated place collisions.",
		}),
		SessionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelplanner",
			Name:      "session_transitions_total",
			Help:      "Planner session events by outcome.",
		}, []string{"event", "outcome"}),
		ShareLinks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelplanner",
			Name:      "share_links_total",
			Help:      "Share links issued and resolved.",
		}, []string{"op", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ItinerariesGenerated,
		m.ActivitiesPerDay,
		m.DroppedSlots,
		m.SessionTransitions,
		m.ShareLinks,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
