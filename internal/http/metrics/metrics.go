package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

type Collector struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	errorTotal     *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickhire",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quickhire",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "status"}),
		errorTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickhire",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Count of error responses by code",
		}, []string{"code"}),
	}
	prometheus.MustRegister(c.requestTotal, c.requestLatency, c.errorTotal)
	return c
}

func (c *Collector) RecordRequest(method string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	labels := prometheus.Labels{"method": method, "status": strconv.Itoa(status)}
	c.requestTotal.With(labels).Inc()
	c.requestLatency.With(labels).Observe(duration.Seconds())
}

func (c *Collector) RecordError(code string) {
	if c == nil {
		return
	}
	c.errorTotal.With(prometheus.Labels{"code": code}).Inc()
}
