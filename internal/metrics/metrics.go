// Package metrics provides Prometheus instruments for notation validation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Validations by result: "valid" or "invalid"
	Validations *prometheus.CounterVec

	// Full validation latency
	Duration prometheus.Histogram

	// Errors and warnings by kind ("error"|"warning") and type
	Findings *prometheus.CounterVec

	// Registry lookups by registry ("question"|"notation") and outcome ("ok"|"error")
	RegistryLookups *prometheus.CounterVec

	// JSON field validations by kind and result
	FieldValidations *prometheus.CounterVec
}

// New registers all instruments with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notation_validations_total",
			Help: "Total notation validations by result",
		}, []string{"result"}),

		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "notation_validation_duration_seconds",
			Help:    "Duration of a full notation validation including registry lookups",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		Findings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notation_validation_findings_total",
			Help: "Validation errors and warnings by kind and type",
		}, []string{"kind", "type"}),

		RegistryLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notation_registry_lookups_total",
			Help: "Registry lookups by registry and outcome",
		}, []string{"registry", "outcome"}),

		FieldValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notation_field_validations_total",
			Help: "JSON field validations by kind and result",
		}, []string{"kind", "result"}),
	}
}

// ObserveValidation records one completed validation.
func (m *Metrics) ObserveValidation(valid bool, d time.Duration) {
	if m != nil {
		m.Validations.WithLabelValues(result(valid)).Inc()
		m.Duration.Observe(d.Seconds())
	}
}

// IncrementFinding records one error or warning.
func (m *Metrics) IncrementFinding(kind, typ string) {
	if m != nil {
		m.Findings.WithLabelValues(kind, typ).Inc()
	}
}

// IncrementLookup records a registry lookup outcome.
func (m *Metrics) IncrementLookup(registry string, err error) {
	if m != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		m.RegistryLookups.WithLabelValues(registry, outcome).Inc()
	}
}

// IncrementField records one JSON field validation.
func (m *Metrics) IncrementField(kind string, valid bool) {
	if m != nil {
		m.FieldValidations.WithLabelValues(kind, result(valid)).Inc()
	}
}

func result(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
