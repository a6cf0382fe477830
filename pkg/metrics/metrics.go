package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records order submissions and document rendering outcomes.
type OrderMetrics struct {
	submissions    *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	documents      *prometheus.CounterVec
}

// NewOrderMetrics registers the order pipeline metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submissions by outcome.",
	}, []string{"outcome"})
	renderDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "document_render_duration_seconds",
		Help:    "Duration of production document rendering in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"item_type"})
	documents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "documents_generated_total",
		Help: "Generated production documents by item type.",
	}, []string{"item_type"})
	reg.MustRegister(submissions, renderDuration, documents)
	return &OrderMetrics{
		submissions:    submissions,
		renderDuration: renderDuration,
		documents:      documents,
	}
}

// IncSubmission counts one submission with the given outcome.
func (m *OrderMetrics) IncSubmission(outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveRender records the rendering duration for one item-type group.
func (m *OrderMetrics) ObserveRender(itemType string, duration time.Duration) {
	if m == nil || m.renderDuration == nil {
		return
	}
	m.renderDuration.WithLabelValues(normalizeLabel(itemType)).Observe(duration.Seconds())
}

// IncDocument counts one generated document for the item type.
func (m *OrderMetrics) IncDocument(itemType string) {
	if m == nil || m.documents == nil {
		return
	}
	m.documents.WithLabelValues(normalizeLabel(itemType)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
