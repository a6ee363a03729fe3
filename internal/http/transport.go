package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// HTTPTransport is the default Transport. It sends every request exactly once.
type HTTPTransport struct {
	client *retryablehttp.Client
}

// NewHTTPTransport creates a single-attempt transport. A zero timeout uses the default.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.CheckRetry = neverRetry
	client.Logger = nil
	client.HTTPClient.Timeout = timeout

	return &HTTPTransport{client: client}
}

func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// Execute implements teamwork.Transport.
func (t *HTTPTransport) Execute(ctx context.Context, req *teamwork.Request) (*teamwork.Response, error) {
	var body interface{}
	if len(req.Body) > 0 {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &teamwork.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
	}, nil
}
