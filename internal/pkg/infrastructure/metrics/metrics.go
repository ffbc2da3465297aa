package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace string = "auction_map"

var DefaultHTTPDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	TerritoryAnalyses     prometheus.Counter
	TerritoriesScored     prometheus.Histogram
	HotTerritoriesTotal   prometheus.Counter
	SeededPropertiesTotal *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration",
			Buckets:   DefaultHTTPDurationBuckets,
		}, []string{"method", "path"}),
		TerritoryAnalyses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "territory_analyses_total",
			Help:      "Number of viewport territory analyses",
		}),
		TerritoriesScored: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "territories_scored",
			Help:      "Number of scored territories per analysis",
			Buckets:   prometheus.LinearBuckets(0, 10, 12),
		}),
		HotTerritoriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hot_territories_total",
			Help:      "Number of territories at or above the alert threshold",
		}),
		SeededPropertiesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeded_properties_total",
			Help:      "Number of properties added to storage at start-up",
		}, []string{"source"}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TerritoryAnalyses,
		m.TerritoriesScored,
		m.HotTerritoriesTotal,
		m.SeededPropertiesTotal,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) RecordAnalysis(scored, hot int) {
	m.TerritoryAnalyses.Inc()
	m.TerritoriesScored.Observe(float64(scored))
	m.HotTerritoriesTotal.Add(float64(hot))
}

// Middleware records request counts and durations labelled with the matched chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rw.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
