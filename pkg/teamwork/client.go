package teamwork

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Transport sends a fully built request. Implementations return a Response for
// every HTTP answer, including error statuses, and an error only when no
// answer was received (or a *StatusError).
type Transport interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// ResourceHandler executes the operations of one API resource.
type ResourceHandler interface {
	// Name is the canonical resource name, e.g. "taskLists".
	Name() string
	// Operations lists the operation names in declaration order.
	Operations() []string
	// Call runs an operation by name. Lookup is case-insensitive.
	// Results are decoded JSON values where numbers, including numeric IDs,
	// are json.Number. Use Decode to convert them into typed structs.
	Call(ctx context.Context, operation string, args Args) (any, error)

	All(ctx context.Context, query Query) (any, error)
	// Get returns the unwrapped record. A numeric id in the body comes back as
	// json.Number("42"), not an int.
	Get(ctx context.Context, id any) (any, error)
	Create(ctx context.Context, params Params, parentIDs ...any) (any, error)
	Update(ctx context.Context, id any, params Params) (any, error)
	Delete(ctx context.Context, id any) (any, error)
}

// ResourceClients provides typed access to the built-in resources.
type ResourceClients interface {
	Account() ResourceHandler
	Activity() ResourceHandler
	Billing() ResourceHandler
	Comments() ResourceHandler
	Companies() ResourceHandler
	CurrentUser() ResourceHandler
	Links() ResourceHandler
	MessageReplies() ResourceHandler
	Messages() ResourceHandler
	Milestones() ResourceHandler
	Notebooks() ResourceHandler
	People() ResourceHandler
	Projects() ResourceHandler
	Risks() ResourceHandler
	Tags() ResourceHandler
	TaskLists() ResourceHandler
	Tasks() ResourceHandler
	Workload() ResourceHandler
}

// Client is the entry point: it resolves resource names to handlers that all
// share one API client and its credentials.
type Client interface {
	ResourceClients

	// Resolve returns the handler registered under name, ignoring case.
	Resolve(name string) (ResourceHandler, error)
	// Resources lists the registered resource names.
	Resources() []string

	Credentials() Credentials
	SetAPIKey(apiKey string)
	SetBaseURL(baseURL string)

	// LastRequest and LastResponse describe the most recent call only.
	LastRequest() *Request
	LastResponse() *ResponseEnvelope
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a teamwork.Client.
//
// Exactly one of BaseURL or Domain is normally set. twclient.New turns a
// Domain such as "acme.teamwork.com" into "https://acme.teamwork.com", trims a
// trailing slash from BaseURL, and adds "https://" when no scheme is present.
//
// Requests are sent once. There are no retries; per-call deadlines should be
// set on the context passed to handler methods.
type Config struct {
	// APIKey is sent as the basic auth username.
	APIKey string
	// BaseURL is the account URL, e.g. "https://acme.teamwork.com".
	BaseURL string
	// Domain is used when BaseURL is empty.
	Domain string

	// HTTPTimeout bounds each request made by the default transport. Zero uses the default.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger is used by the HTTP layer.
	Logger Logger
	// EscapeQuery percent-encodes query keys and values. Off by default to
	// match the literal query strings the API has always received.
	EscapeQuery bool
	// RequestsPerMinute enables client-side rate limiting when positive.
	RequestsPerMinute int

	// Transport replaces the default HTTP transport.
	Transport Transport
	// Interceptors run around every request.
	Interceptors *InterceptorChain
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	var result *multierror.Error

	if c.APIKey == "" {
		result = multierror.Append(result, ErrAPIKeyRequired)
	}

	switch {
	case c.BaseURL == "" && c.Domain == "":
		result = multierror.Append(result, ErrBaseURLRequired)
	case c.BaseURL != "":
		parsed, err := url.Parse(c.BaseURL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			result = multierror.Append(result, fmt.Errorf("%q: %w", c.BaseURL, ErrInvalidBaseURL))
		}
	}

	if c.HTTPTimeout < 0 {
		result = multierror.Append(result, ErrNegativeTimeout)
	}

	if c.RequestsPerMinute < 0 {
		result = multierror.Append(result, ErrNegativeRateLimit)
	}

	return result.ErrorOrNil()
}
