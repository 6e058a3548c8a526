package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by collections. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	loadFallbacks   *prometheus.CounterVec
	records         *prometheus.GaugeVec
}

// NewMetrics builds the collectors and registers them on reg (skipped when reg is nil).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studydesk",
			Name:      "mutations_total",
			Help:      "Committed record mutations by collection and operation.",
		}, []string{"collection", "op"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studydesk",
			Name:      "persist_failures_total",
			Help:      "Collection writes rejected by the persistence backend.",
		}, []string{"collection"}),
		loadFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studydesk",
			Name:      "load_fallbacks_total",
			Help:      "Collections reset to empty because the stored payload could not be read or decoded.",
		}, []string{"collection"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "studydesk",
			Name:      "records",
			Help:      "Records currently held per collection.",
		}, []string{"collection"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.mutations, m.persistFailures, m.loadFallbacks, m.records} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) mutation(collection, op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(collection, op).Inc()
}

func (m *Metrics) persistFailure(collection string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(collection).Inc()
}

func (m *Metrics) loadFallback(collection string) {
	if m == nil {
		return
	}
	m.loadFallbacks.WithLabelValues(collection).Inc()
}

func (m *Metrics) setRecords(collection string, n int) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(collection).Set(float64(n))
}
