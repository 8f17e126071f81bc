package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the pipeline's prometheus collectors.
type Metrics struct {
	runs          *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	vertices      *prometheus.GaugeVec
	edges         *prometheus.GaugeVec
}

// NewMetrics registers the collectors on reg. A nil reg creates them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "socnet",
				Name:      "runs_total",
				Help:      "Pipeline runs by interaction type and outcome",
			},
			[]string{"kind", "outcome"}, // "ok", "error", "canceled"
		),
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "socnet",
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stages in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10), // 0.5ms to ~2m
			},
			[]string{"kind", "stage"},
		),
		vertices: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "socnet",
				Name:      "graph_vertices",
				Help:      "Vertex count of the last graph built, before and after reduction",
			},
			[]string{"kind", "phase"}, // "raw", "reduced"
		),
		edges: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "socnet",
				Name:      "graph_edges",
				Help:      "Edge count of the last graph built, before and after reduction",
			},
			[]string{"kind", "phase"},
		),
	}
}

func (m *Metrics) observeStage(kind, stage string, seconds float64) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(kind, stage).Observe(seconds)
}

func (m *Metrics) observeRun(kind, outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) observeSize(kind, phase string, vertices, edges int) {
	if m == nil {
		return
	}
	m.vertices.WithLabelValues(kind, phase).Set(float64(vertices))
	m.edges.WithLabelValues(kind, phase).Set(float64(edges))
}

// Runs is the run counter, labelled by kind and outcome.
func (m *Metrics) Runs() *prometheus.CounterVec { return m.runs }

// StageDuration is the stage latency histogram, labelled by kind and stage.
func (m *Metrics) StageDuration() *prometheus.HistogramVec { return m.stageDuration }

// Vertices is the graph-size gauge, labelled by kind and phase.
func (m *Metrics) Vertices() *prometheus.GaugeVec { return m.vertices }

// Edges is Vertices for edges.
func (m *Metrics) Edges() *prometheus.GaugeVec { return m.edges }
