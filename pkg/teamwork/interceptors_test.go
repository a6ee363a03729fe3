package teamwork_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var errInterceptor = errors.New("interceptor error")

// recordingLogger captures log calls.
type recordingLogger struct {
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"debug", msg, fields})
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"info", msg, fields})
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"warn", msg, fields})
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"error", msg, fields})
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := teamwork.NewInterceptorChain()

	var executionOrder []int

	chain.AddRequestInterceptor(func(ctx context.Context, req *teamwork.Request) error {
		executionOrder = append(executionOrder, 1)
		req.Headers.Set("X-First", "1")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *teamwork.Request) error {
		executionOrder = append(executionOrder, 2)
		req.Headers.Set("X-Second", "2")

		return nil
	})

	req := &teamwork.Request{Method: "GET", Path: "projects.json", Headers: make(map[string][]string)}

	err := chain.ExecuteRequestInterceptors(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, executionOrder)
	assert.Equal(t, "1", req.Headers.Get("X-First"))
	assert.Equal(t, "2", req.Headers.Get("X-Second"))
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	t.Parallel()

	chain := teamwork.NewInterceptorChain()

	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *teamwork.Request) error {
		return errInterceptor
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *teamwork.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &teamwork.Request{})
	require.ErrorIs(t, err, errInterceptor)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := teamwork.NewInterceptorChain()

	var executionOrder []int

	chain.AddResponseInterceptor(func(ctx context.Context, req *teamwork.Request, resp *teamwork.Response) error {
		executionOrder = append(executionOrder, 1)

		return nil
	})
	chain.AddResponseInterceptor(func(ctx context.Context, req *teamwork.Request, resp *teamwork.Response) error {
		executionOrder = append(executionOrder, 2)

		return errInterceptor
	})

	err := chain.ExecuteResponseInterceptors(context.Background(), &teamwork.Request{}, &teamwork.Response{StatusCode: 200})
	require.ErrorIs(t, err, errInterceptor)
	assert.Contains(t, err.Error(), "response interceptor failed")
	assert.Equal(t, []int{1, 2}, executionOrder)
}

func TestInterceptorChain_Clone(t *testing.T) {
	t.Parallel()

	chain := teamwork.NewInterceptorChain()

	var calls []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *teamwork.Request) error {
		calls = append(calls, "shared")

		return nil
	})

	clone := chain.Clone()
	clone.AddRequestInterceptor(func(ctx context.Context, req *teamwork.Request) error {
		calls = append(calls, "clone only")

		return nil
	})

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &teamwork.Request{}))
	assert.Equal(t, []string{"shared"}, calls)

	calls = nil

	require.NoError(t, clone.ExecuteRequestInterceptors(context.Background(), &teamwork.Request{}))
	assert.Equal(t, []string{"shared", "clone only"}, calls)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := teamwork.HeaderInterceptor(headers)
	req := &teamwork.Request{
		Method: "GET",
		Path:   "projects.json",
	}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	ctx := teamwork.WithOperation(context.Background(), "projects", "get")
	req := &teamwork.Request{Method: "GET", Path: "projects/1.json"}

	require.NoError(t, teamwork.LoggingInterceptor(logger)(ctx, req))
	require.NoError(t, teamwork.LoggingResponseInterceptor(logger)(ctx, req, &teamwork.Response{StatusCode: 200}))
	require.NoError(t, teamwork.LoggingResponseInterceptor(logger)(ctx, req,
		&teamwork.Response{StatusCode: 500, Error: errInterceptor}))

	require.Len(t, logger.entries, 3)
	assert.Equal(t, "API Request", logger.entries[0].msg)
	assert.Equal(t, "projects", logger.entries[0].fields["resource"])
	assert.Equal(t, "get", logger.entries[0].fields["operation"])
	assert.Equal(t, "debug", logger.entries[1].level)
	assert.Equal(t, "error", logger.entries[2].level)
	assert.Equal(t, "interceptor error", logger.entries[2].fields["error"])
}

func TestNewRateLimiter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rate.Inf, teamwork.NewRateLimiter(0).Limit())
	assert.Equal(t, rate.Inf, teamwork.NewRateLimiter(-5).Limit())
	assert.InDelta(t, 1.0, float64(teamwork.NewRateLimiter(60).Limit()), 0.0001)
	assert.Equal(t, 1, teamwork.NewRateLimiter(60).Burst())
}

func TestRateLimitInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := teamwork.RateLimitInterceptor(teamwork.NewRateLimiter(1))

	// The first call uses the burst.
	require.NoError(t, interceptor(context.Background(), &teamwork.Request{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := interceptor(ctx, &teamwork.Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waiting for rate limiter")
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := teamwork.NewMetricsCollector()

	var (
		notifiedEndpoint string
		notifiedMetrics  teamwork.Metrics
	)

	collector.SetOnChange(func(endpoint string, metrics teamwork.Metrics) {
		notifiedEndpoint = endpoint
		notifiedMetrics = metrics
	})

	requestInterceptor := teamwork.MetricsRequestInterceptor()
	responseInterceptor := teamwork.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &teamwork.Request{
		Method: "GET",
		Path:   "projects.json",
	}

	err := requestInterceptor(ctx, req)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	err = responseInterceptor(ctx, req, &teamwork.Response{StatusCode: 200})
	require.NoError(t, err)

	assert.Equal(t, "GET projects.json", notifiedEndpoint)
	assert.Equal(t, int64(1), notifiedMetrics.TotalRequests)
	assert.Equal(t, int64(0), notifiedMetrics.TotalErrors)
	assert.Positive(t, notifiedMetrics.AverageLatency)

	// No start time recorded for the second request.
	req2 := &teamwork.Request{Method: "GET", Path: "projects.json"}
	err = responseInterceptor(ctx, req2, &teamwork.Response{StatusCode: 500})
	require.NoError(t, err)

	metrics := collector.GetMetrics("GET projects.json")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)

	assert.Nil(t, collector.GetMetrics("GET people.json"))
}

func TestMetricsCollector_KeysByOperation(t *testing.T) {
	t.Parallel()

	collector := teamwork.NewMetricsCollector()
	ctx := teamwork.WithOperation(context.Background(), "tasks", "complete")

	err := teamwork.MetricsResponseInterceptor(collector)(ctx,
		&teamwork.Request{Method: "PUT", Path: "tasks/1/complete.json"}, &teamwork.Response{StatusCode: 0, Error: errInterceptor})
	require.NoError(t, err)

	metrics := collector.GetMetrics("tasks.complete")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(1), metrics.TotalErrors)
}
