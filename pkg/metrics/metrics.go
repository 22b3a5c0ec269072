package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP holds request metrics shared by all delivery handlers
type HTTP struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewHTTP registers request metrics on reg
func NewHTTP(reg prometheus.Registerer) *HTTP {
	m := &HTTP{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_service_requests_total",
				Help: "Total number of requests to inventory service",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_service_request_duration_seconds",
				Help:    "Duration of inventory service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// Summary metric for percentile calculation (p50, p90, p95, p99)
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "inventory_service_request_duration_summary",
				Help: "Summary of request durations with percentiles (client-side quantiles)",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
	}

	reg.MustRegister(m.requestCounter, m.requestLatency, m.requestSummary)
	return m
}

// Wrap records metrics for one route. A nil receiver returns next unchanged.
func (m *HTTP) Wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		m.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// Inventory holds domain metrics
type Inventory struct {
	productsByStatus *prometheus.GaugeVec
	statusHeals      *prometheus.CounterVec
	droppedTasks     prometheus.Counter
}

// NewInventory registers inventory metrics on reg
func NewInventory(reg prometheus.Registerer) *Inventory {
	m := &Inventory{
		productsByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_products",
				Help: "Number of products by stock status at the last report generation",
			},
			[]string{"status"},
		),
		statusHeals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_status_heals_total",
				Help: "Stored stock statuses corrected on read",
			},
			[]string{"mode", "result"},
		),
		droppedTasks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "inventory_background_tasks_dropped_total",
				Help: "Best-effort background tasks dropped because the queue was full",
			},
		),
	}

	reg.MustRegister(m.productsByStatus, m.statusHeals, m.droppedTasks)
	return m
}

// SetProductsByStatus replaces the per-status gauge values
func (m *Inventory) SetProductsByStatus(counts map[string]int) {
	if m == nil {
		return
	}
	m.productsByStatus.Reset()
	for status, n := range counts {
		m.productsByStatus.WithLabelValues(status).Set(float64(n))
	}
}

// ObserveHeal counts one self-heal write. mode is "async" or "sync".
func (m *Inventory) ObserveHeal(mode string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.statusHeals.WithLabelValues(mode, result).Inc()
}

// TaskDropped counts a task rejected by a full queue
func (m *Inventory) TaskDropped() {
	if m == nil {
		return
	}
	m.droppedTasks.Inc()
}

// statusWriter wraps http.ResponseWriter to capture status code
type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
