package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "tsread"

// Metrics counts what data sets produce. A nil *Metrics records nothing.
type Metrics struct {
	rows    prometheus.Counter
	fields  *prometheus.CounterVec
	pending prometheus.Gauge
}

// NewMetrics registers the query collectors on reg under namespace ("tsread" when empty)
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &Metrics{
		rows: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "rows_total",
			Help:      "Total number of aligned rows produced.",
		}),
		fields: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "fields_total",
			Help:      "Total number of fields produced, by null marker.",
		}, []string{"null"}),
		pending: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "pending_timestamps",
			Help:      "Distinct timestamps waiting to be emitted by the last active data set.",
		}),
	}
}

func (m *Metrics) observeRow(r *RowRecord, pending int) {
	if m == nil {
		return
	}
	nulls := r.NullCount()
	m.rows.Inc()
	m.fields.WithLabelValues("true").Add(float64(nulls))
	m.fields.WithLabelValues("false").Add(float64(len(r.Fields) - nulls))
	m.pending.Set(float64(pending))
}

func (m *Metrics) setPending(pending int) {
	if m == nil {
		return
	}
	m.pending.Set(float64(pending))
}
