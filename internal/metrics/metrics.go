// Package metrics exposes Prometheus metrics for orders, pick toggles and
// HTTP traffic.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/lynx/internal/model"
)

const namespace = "lynx"

// Order lifecycle events counted by OrderEvent.
const (
	EventCreated   = "created"
	EventActivated = "activated"
	EventCompleted = "completed"
)

// StatusCounter reports how many orders are in each status.
// *store.Store implements it.
type StatusCounter interface {
	CountOrdersByStatus(ctx context.Context) (map[model.OrderStatus]int, error)
}

// Metrics holds the registry and the instruments updated by handlers.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	orderEvents  *prometheus.CounterVec
	itemToggles  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates a registry with the lynx instruments and the Go runtime
// collectors. When counter is non-nil the number of orders per status is
// read from it on every scrape.
func New(counter StatusCounter) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		orderEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_events_total",
			Help:      "Order lifecycle events by type.",
		}, []string{"event"}),
		itemToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_toggles_total",
			Help:      "Found toggles on the pick display, by resulting state.",
		}, []string{"found"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		m.orderEvents,
		m.itemToggles,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if counter != nil {
		m.registry.MustRegister(newStatusCollector(counter))
	}
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// OrderEvent counts an order lifecycle event.
func (m *Metrics) OrderEvent(event string) {
	if m == nil {
		return
	}
	m.orderEvents.WithLabelValues(event).Inc()
}

// ItemToggled counts a found toggle.
func (m *Metrics) ItemToggled(found bool) {
	if m == nil {
		return
	}
	m.itemToggles.WithLabelValues(strconv.FormatBool(found)).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// statusCollector reports the current order count per status at scrape time.
type statusCollector struct {
	counter StatusCounter
	desc    *prometheus.Desc
}

func newStatusCollector(counter StatusCounter) *statusCollector {
	return &statusCollector{
		counter: counter,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "orders"),
			"Orders currently in each status.",
			[]string{"status"}, nil,
		),
	}
}

func (c *statusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *statusCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := c.counter.CountOrdersByStatus(ctx)
	if err != nil {
		slog.Error("failed to count orders for metrics", "error", err)
		return
	}
	for status, n := range counts {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(n), string(status))
	}
}
