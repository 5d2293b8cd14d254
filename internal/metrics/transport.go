package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"entrega-tracker/internal/logx"
)

var (
	outboundRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbound_requests_total",
			Help: "Total number of outbound HTTP requests",
		},
		[]string{"method", "host", "status"},
	)
	outboundRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outbound_request_duration_seconds",
			Help:    "Duration of outbound HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "host", "status"},
	)
)

func init() {
	prometheus.MustRegister(outboundRequestsTotal, outboundRequestDuration)
}

// InstrumentedTransport wraps an http.RoundTripper with request
// counting, latency observation and structured logging. Transport
// failures are labeled with status "error".
func InstrumentedTransport(next http.RoundTripper, logger logx.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(r)
		tm := time.Since(start)

		status := "error"
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}

		outboundRequestsTotal.WithLabelValues(r.Method, r.URL.Host, status).Inc()
		outboundRequestDuration.WithLabelValues(r.Method, r.URL.Host, status).Observe(tm.Seconds())

		logger.Debug("outbound request",
			logx.String("method", r.Method),
			logx.String("host", r.URL.Host),
			logx.String("status", status),
			logx.Duration("duration", tm),
		)
		return resp, err
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
