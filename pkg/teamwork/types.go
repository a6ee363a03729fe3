package teamwork

import (
	"net/http"
)

// Params holds the fields of a create or update call, keyed by the API's field names.
type Params map[string]any

// Clone returns a shallow copy so hooks can rewrite fields without touching the caller's map.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}

	out := make(Params, len(p))
	for key, value := range p {
		out[key] = value
	}

	return out
}

// Pick returns a copy holding only the given fields that are present.
func (p Params) Pick(fields ...string) Params {
	out := make(Params, len(fields))

	for _, field := range fields {
		if value, ok := p[field]; ok {
			out[field] = value
		}
	}

	return out
}

// QueryParam is a single query string pair.
type QueryParam struct {
	Key   string
	Value any
}

// Query is an ordered list of query string pairs. Order is preserved on the wire.
type Query []QueryParam

// NewQuery creates an empty query.
func NewQuery() Query {
	return Query{}
}

// Add appends a pair and returns the extended query.
func (q Query) Add(key string, value any) Query {
	return append(q, QueryParam{Key: key, Value: value})
}

// Get returns the first value stored under key.
func (q Query) Get(key string) (any, bool) {
	for _, param := range q {
		if param.Key == key {
			return param.Value, true
		}
	}

	return nil, false
}

// Params converts the query into Params so it can be validated like a body.
func (q Query) Params() Params {
	out := make(Params, len(q))

	for _, param := range q {
		if _, seen := out[param.Key]; !seen {
			out[param.Key] = param.Value
		}
	}

	return out
}

// Args carries the inputs of a single resource operation.
type Args struct {
	// IDs are the positional path identifiers, in the order the operation declares them.
	IDs []any
	// Params is the request body for POST and PUT operations.
	Params Params
	// Query is appended to the URL.
	Query Query
}

// Credentials identify the Teamwork account requests are sent to.
type Credentials struct {
	APIKey  string `json:"-"        yaml:"-"`
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// RequestSpec describes one API call before it is turned into an HTTP request.
type RequestSpec struct {
	Method string
	Path   string
	Query  Query
	Body   any
}

// ResponseEnvelope is the raw and decoded form of the most recent response.
type ResponseEnvelope struct {
	StatusCode int
	Headers    http.Header
	RawBody    []byte
	Decoded    any
}
