package teamwork

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics exports call counts and latencies.
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with registerer.
func NewPrometheusMetrics(registerer prometheus.Registerer) (*PrometheusMetrics, error) {
	metrics := &PrometheusMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "teamwork",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Teamwork API requests by resource, operation, method, and status class.",
			},
			[]string{"resource", "operation", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "teamwork",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Teamwork API request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"resource", "operation", "method"},
		),
	}

	for _, collector := range []prometheus.Collector{metrics.requests, metrics.duration} {
		err := registerer.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering metric: %w", err)
		}
	}

	return metrics, nil
}

// Install adds the request timer and the response recorder to chain.
func (m *PrometheusMetrics) Install(chain *InterceptorChain) {
	chain.AddRequestInterceptor(MetricsRequestInterceptor())
	chain.AddResponseInterceptor(m.ResponseInterceptor())
}

// ResponseInterceptor records one observation per response.
func (m *PrometheusMetrics) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		resource, operation := operationLabels(ctx)

		m.requests.WithLabelValues(resource, operation, req.Method, statusClass(resp)).Inc()

		if latency := elapsed(req); latency > 0 {
			m.duration.WithLabelValues(resource, operation, req.Method).Observe(latency.Seconds())
		}

		return nil
	}
}

func operationLabels(ctx context.Context) (string, string) {
	if info, ok := OperationFromContext(ctx); ok {
		return info.Resource, info.Operation
	}

	return "none", "none"
}

// statusClass maps a response to "2xx", "4xx", ... or "error" when no status was received.
func statusClass(resp *Response) string {
	if resp.StatusCode == 0 {
		return "error"
	}

	return strconv.Itoa(resp.StatusCode/100) + "xx"
}
