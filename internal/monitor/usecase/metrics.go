package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "escalation"

type metrics struct {
	cycles        prometheus.Counter
	cycleDuration prometheus.Histogram
	evalErrors    prometheus.Counter
	alerts        prometheus.Gauge
	monitoring    prometheus.Gauge
	escalations   *prometheus.CounterVec
	conflicts     prometheus.Counter
	dismissals    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &metrics{
		cycles: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "cycles_total",
			Help:      "Monitoring cycles completed.",
		}),
		cycleDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "cycle_duration_seconds",
			Help:      "Time spent evaluating all complaints in one cycle.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		evalErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "evaluation_errors_total",
			Help:      "Complaints skipped because they could not be evaluated.",
		}),
		alerts: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "alerts",
			Help:      "Escalation alerts currently held.",
		}),
		monitoring: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "running",
			Help:      "1 while the monitoring schedule is active.",
		}),
		escalations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "escalations_total",
			Help:      "Committed escalations.",
		}, []string{"triggered_by"}),
		conflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "commit_conflicts_total",
			Help:      "Escalations that lost a race with another commit.",
		}),
		dismissals: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "monitor",
			Name:      "dismissals_total",
			Help:      "Alerts dismissed by an operator.",
		}),
	}
}
