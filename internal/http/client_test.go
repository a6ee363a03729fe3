package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	twhttp "github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnectionRefused = errors.New("connection refused")

// MockLogger for testing.
type MockLogger struct {
	mutex sync.Mutex
	logs  []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

// stubTransport answers every request with the same outcome and counts calls.
type stubTransport struct {
	calls    int
	response *teamwork.Response
	err      error
}

func (s *stubTransport) Execute(ctx context.Context, req *teamwork.Request) (*teamwork.Response, error) {
	s.calls++

	return s.response, s.err
}

func newServerClient(t *testing.T, handler http.HandlerFunc, opts ...twhttp.Option) *twhttp.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return twhttp.NewClient(teamwork.Credentials{APIKey: "twp_secret", BaseURL: server.URL}, opts...)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects/42.json", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			username, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "twp_secret", username)
			assert.Equal(t, "X", password)

			_, _ = writer.Write([]byte(`{"project": {"id": "42", "name": "Website"}, "STATUS": "OK"}`))
		})

		result, err := client.Get(context.Background(), "projects/42.json", nil)
		require.NoError(t, err)

		project, err := teamwork.Unwrap(result, "project")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "42", "name": "Website"}, project)

		last := client.LastResponse()
		require.NotNil(t, last)
		assert.Equal(t, http.StatusOK, last.StatusCode)
		assert.Equal(t, result, last.Decoded)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "page=2&pageSize=50", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		})

		result, err := client.Get(context.Background(), "projects.json", teamwork.NewQuery().Add("page", 2).Add("pageSize", 50))
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Website", body["project"]["name"])

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id": 7}`))
		})

		result, err := client.Post(context.Background(), "projects.json", map[string]any{"project": teamwork.Params{"name": "Website"}})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": json.Number("7")}, result)
	})

	t.Run("unauthorized response", func(t *testing.T) {
		t.Parallel()

		client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Get(context.Background(), "account.json", nil)
		require.Error(t, err)
		assert.True(t, teamwork.IsNotAuthorized(err))
		require.ErrorIs(t, err, teamwork.ErrNotAuthorized)
		assert.Equal(t, "Teamwork API key `twp_***` does not have permission for this request.", err.Error())
		assert.Equal(t, "twp_secret", client.Credentials().APIKey)

		require.NotNil(t, client.LastResponse())
		assert.Equal(t, http.StatusUnauthorized, client.LastResponse().StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"MESSAGE": "Project not found", "STATUS": "Error"}`))
		})

		_, err := client.Delete(context.Background(), "projects/9.json")
		require.Error(t, err)

		failed := &teamwork.RequestFailedError{}
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, http.StatusNotFound, failed.StatusCode)
		assert.Equal(t, "Project not found", failed.Message)
		assert.Equal(t, "projects/9.json", failed.Endpoint)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		t.Parallel()

		client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`<html>maintenance</html>`))
		})

		_, err := client.Get(context.Background(), "projects.json", nil)
		require.ErrorIs(t, err, teamwork.ErrRequestFailed)
		assert.Equal(t, http.StatusOK, teamwork.StatusCode(err))
	})

	t.Run("custom headers from interceptors", func(t *testing.T) {
		t.Parallel()

		chain := teamwork.NewInterceptorChain()
		chain.AddRequestInterceptor(teamwork.HeaderInterceptor(map[string]string{"X-Custom-Header": "custom-value"}))

		client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}, twhttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "me.json", nil)
		require.NoError(t, err)
	})
}

func TestClient_ConnectionFailure(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{err: errConnectionRefused}
	client := twhttp.NewClient(testCredentials, twhttp.WithTransport(transport))

	_, err := client.Get(context.Background(), "projects.json", nil)
	require.Error(t, err)

	failed := &teamwork.RequestFailedError{}
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 0, failed.StatusCode)
	require.ErrorIs(t, err, errConnectionRefused)
	assert.Nil(t, client.LastResponse())
	assert.NotNil(t, client.LastRequest())
	assert.Equal(t, 1, transport.calls)
}

func TestClient_StatusErrorFromTransport(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{err: &teamwork.StatusError{StatusCode: http.StatusUnauthorized}}
	client := twhttp.NewClient(testCredentials, twhttp.WithTransport(transport))

	_, err := client.Put(context.Background(), "tasks/1/complete.json", nil)
	assert.True(t, teamwork.IsNotAuthorized(err))
}

func TestClient_LastResponseHoldsOnlyLatestCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	client := newServerClient(t, func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)
		writer.Header().Set("X-Call", request.URL.Path)
		_, _ = writer.Write([]byte(`{"project": {"id": "42"}}`))
	})

	first, err := client.Get(context.Background(), "projects/42.json", nil)
	require.NoError(t, err)

	second, err := client.Get(context.Background(), "projects/42.json", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "/projects/42.json", client.LastResponse().Headers.Get("X-Call"))
}

func TestClient_SetCredentials(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{response: &teamwork.Response{StatusCode: http.StatusOK}}
	client := twhttp.NewClient(testCredentials, twhttp.WithTransport(transport))

	client.SetAPIKey("other-key")
	client.SetBaseURL("https://other.teamwork.com")

	_, err := client.Get(context.Background(), "me.json", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://other.teamwork.com/me.json", client.LastRequest().URL)
	assert.Equal(t, teamwork.Credentials{APIKey: "other-key", BaseURL: "https://other.teamwork.com"}, client.Credentials())
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	logger := &MockLogger{}
	transport := &stubTransport{response: &teamwork.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}}
	client := twhttp.NewClient(testCredentials,
		twhttp.WithTransport(transport), twhttp.WithLogger(logger), twhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "me.json", nil)
	require.NoError(t, err)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
	assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

	for _, entry := range logger.logs {
		fields, ok := entry["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.NotContains(t, fields, "authorization")
	}
}

func TestClient_RequestInterceptorFailureSkipsTransport(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := teamwork.NewInterceptorChain()
	chain.AddRequestInterceptor(teamwork.RateLimitInterceptor(teamwork.NewRateLimiter(1)))

	transport := &stubTransport{response: &teamwork.Response{StatusCode: http.StatusOK}}
	client := twhttp.NewClient(testCredentials, twhttp.WithTransport(transport), twhttp.WithInterceptors(chain))

	_, err := client.Get(ctx, "me.json", nil)
	require.ErrorIs(t, err, teamwork.ErrRequestFailed)
	assert.Equal(t, 0, transport.calls)
}
