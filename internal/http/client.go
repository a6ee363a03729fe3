package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// Client sends requests for every resource handler. Calls are serialised so
// the last request and response always describe the same call.
type Client struct {
	mutex        sync.Mutex
	credentials  teamwork.Credentials
	transport    teamwork.Transport
	interceptors *teamwork.InterceptorChain
	logger       teamwork.Logger
	debug        bool
	userAgent    string
	escapeQuery  bool
	timeout      time.Duration

	lastRequest  *teamwork.Request
	lastResponse *teamwork.ResponseEnvelope
}

// NewClient creates a client for credentials. Without WithTransport the
// single-attempt retryablehttp transport is used.
func NewClient(credentials teamwork.Credentials, opts ...Option) *Client {
	client := &Client{
		credentials: credentials,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.transport == nil {
		client.transport = NewHTTPTransport(client.timeout)
	}

	return client
}

// Get sends a GET request with query appended to the URL.
func (c *Client) Get(ctx context.Context, path string, query teamwork.Query) (any, error) {
	return c.Do(ctx, teamwork.RequestSpec{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, teamwork.RequestSpec{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with body encoded as JSON.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, teamwork.RequestSpec{Method: http.MethodPut, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, teamwork.RequestSpec{Method: http.MethodDelete, Path: path})
}

// Do builds, sends, and classifies one request and returns the decoded body.
// An empty body decodes to nil.
func (c *Client) Do(ctx context.Context, spec teamwork.RequestSpec) (any, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	req, err := BuildRequest(spec, c.credentials, BuildOptions{
		EscapeQuery: c.escapeQuery,
		UserAgent:   c.userAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	c.lastRequest = req
	c.lastResponse = nil

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, req)
		if err != nil {
			return nil, &teamwork.RequestFailedError{Endpoint: req.Path, Message: err.Error(), Err: err}
		}
	}

	c.logRequest(req)

	resp := c.execute(ctx, req)

	if c.interceptors != nil {
		err = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
		if err != nil {
			return nil, &teamwork.RequestFailedError{StatusCode: resp.StatusCode, Endpoint: req.Path, Message: err.Error(), Err: err}
		}
	}

	if resp.StatusCode == 0 {
		if resp.Error == nil {
			resp.Error = ErrNoResponse
		}

		return nil, &teamwork.RequestFailedError{Endpoint: req.Path, Message: resp.Error.Error(), Err: resp.Error}
	}

	c.lastResponse = &teamwork.ResponseEnvelope{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		RawBody:    resp.Body,
	}

	c.logResponse(req, resp)

	if resp.StatusCode == constants.HTTPStatusUnauthorized {
		return nil, &teamwork.NotAuthorizedError{APIKey: c.credentials.APIKey, Endpoint: req.Path}
	}

	if resp.StatusCode < constants.HTTPStatusOK || resp.StatusCode >= constants.HTTPStatusMultipleChoices {
		return nil, &teamwork.RequestFailedError{
			StatusCode: resp.StatusCode,
			Endpoint:   req.Path,
			Message:    errorMessage(resp),
			Err:        resp.Error,
		}
	}

	decoded, err := decodeBody(resp.Body)
	if err != nil {
		return nil, &teamwork.RequestFailedError{
			StatusCode: resp.StatusCode,
			Endpoint:   req.Path,
			Message:    "response body is not valid JSON",
			Err:        err,
		}
	}

	c.lastResponse.Decoded = decoded

	return decoded, nil
}

// execute calls the transport and folds its outcome into a Response. A
// *teamwork.StatusError keeps its status; any other error leaves StatusCode 0.
func (c *Client) execute(ctx context.Context, req *teamwork.Request) *teamwork.Response {
	resp, err := c.transport.Execute(ctx, req)
	if resp == nil {
		resp = &teamwork.Response{}
	}

	if err == nil {
		return resp
	}

	resp.Error = err

	statusErr := &teamwork.StatusError{}
	if errors.As(err, &statusErr) {
		resp.StatusCode = statusErr.StatusCode
		if resp.Body == nil {
			resp.Body = statusErr.Body
		}
	}

	return resp
}

// Credentials returns the credentials used for the next request.
func (c *Client) Credentials() teamwork.Credentials {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.credentials
}

// SetAPIKey replaces the API key for subsequent requests.
func (c *Client) SetAPIKey(apiKey string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.credentials.APIKey = apiKey
}

// SetBaseURL replaces the account URL for subsequent requests.
func (c *Client) SetBaseURL(baseURL string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.credentials.BaseURL = baseURL
}

// LastRequest returns the most recently built request, or nil.
func (c *Client) LastRequest() *teamwork.Request {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.lastRequest
}

// LastResponse returns the most recent HTTP response, or nil when the last
// call received none.
func (c *Client) LastResponse() *teamwork.ResponseEnvelope {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.lastResponse
}

func (c *Client) logRequest(req *teamwork.Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL,
		"body":   string(req.Body),
	})
}

func (c *Client) logResponse(req *teamwork.Request, resp *teamwork.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	body := string(resp.Body)
	if len(body) > constants.StringTruncationLength {
		body = body[:constants.StringTruncationLength] + "..."
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL,
		"status": resp.StatusCode,
		"body":   body,
	})
}

// decodeBody parses a JSON body, keeping numbers as json.Number so IDs
// survive a round trip unchanged.
func decodeBody(body []byte) (any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var decoded any

	err := decoder.Decode(&decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	return decoded, nil
}

// errorMessage prefers the API's MESSAGE field and falls back to the status text.
func errorMessage(resp *teamwork.Response) string {
	var payload map[string]any

	if json.Unmarshal(resp.Body, &payload) == nil {
		for _, key := range []string{"MESSAGE", "message", "error"} {
			if text, ok := payload[key].(string); ok && text != "" {
				return text
			}
		}
	}

	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}

	return fmt.Sprintf("status %d", resp.StatusCode)
}
