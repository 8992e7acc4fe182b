package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zapponejosh/uoyweek/internal/academic"
)

// Metrics counts labels served by the API.
type Metrics struct {
	labels  *prometheus.CounterVec
	errors  *prometheus.CounterVec
	handler http.Handler
}

// NewMetrics registers the API collectors with reg and serves everything
// reg gathers.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		labels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uoyweek",
			Name:      "labels_total",
			Help:      "Labels rendered, by period kind.",
		}, []string{"kind"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uoyweek",
			Name:      "label_errors_total",
			Help:      "Dates that could not be labeled, by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.labels, m.errors)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) observeLabel(kind academic.Kind) {
	m.labels.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) observeError(err error) {
	reason := "other"
	switch {
	case academic.IsNoPeriodFound(err):
		reason = "no_period"
	case academic.IsOutOfRange(err):
		reason = "week_out_of_range"
	}
	m.errors.WithLabelValues(reason).Inc()
}
