package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "teamwork-go-client/1.0"

// Static errors for err113 compliance.
var (
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
	ErrNoResponse        = errors.New("transport returned no response")
)

// BuildOptions adjust how a RequestSpec is rendered.
type BuildOptions struct {
	EscapeQuery bool
	UserAgent   string
}

// BuildRequest turns spec into a fully authenticated request against credentials.BaseURL.
// The URL is BaseURL + "/" + Path with the query appended in order. GET and
// DELETE never carry a body; other verbs carry spec.Body as JSON when it is non-empty.
func BuildRequest(spec teamwork.RequestSpec, credentials teamwork.Credentials, opts BuildOptions) (*teamwork.Request, error) {
	method := strings.ToUpper(spec.Method)

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%q: %w", spec.Method, ErrUnsupportedMethod)
	}

	path := strings.TrimLeft(spec.Path, "/")
	target := strings.TrimRight(credentials.BaseURL, "/") + "/" + path + QueryString(spec.Query, opts.EscapeQuery)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	headers := make(http.Header)
	headers.Set("Authorization", "Basic "+basicAuth(credentials.APIKey))
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", userAgent)

	req := &teamwork.Request{
		Method:   method,
		URL:      target,
		Path:     path,
		Headers:  headers,
		Metadata: make(map[string]interface{}),
	}

	if method == http.MethodGet || method == http.MethodDelete || !hasBody(spec.Body) {
		return req, nil
	}

	body, err := json.Marshal(spec.Body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req.Body = body
	req.Headers.Set("Content-Type", "application/json")

	return req, nil
}

// QueryString renders query as "?k=v&k=v". Booleans become true/false. Keys
// and values are written as-is unless escape is set. An empty query renders "".
func QueryString(query teamwork.Query, escape bool) string {
	if len(query) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, param := range query {
		if i == 0 {
			builder.WriteByte('?')
		} else {
			builder.WriteByte('&')
		}

		key, value := param.Key, formatValue(param.Value)
		if escape {
			key, value = url.QueryEscape(key), url.QueryEscape(value)
		}

		builder.WriteString(key)
		builder.WriteByte('=')
		builder.WriteString(value)
	}

	return builder.String()
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(typed)
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	default:
		return fmt.Sprint(typed)
	}
}

func basicAuth(apiKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(apiKey + ":" + constants.PlaceholderPassword))
}

func hasBody(body any) bool {
	switch typed := body.(type) {
	case nil:
		return false
	case teamwork.Params:
		return len(typed) > 0
	case map[string]any:
		return len(typed) > 0
	default:
		return true
	}
}
