package http

import (
	"time"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger teamwork.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTransport replaces the default retryablehttp transport.
func WithTransport(transport teamwork.Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *teamwork.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithEscapedQuery percent-encodes query keys and values.
func WithEscapedQuery(escape bool) Option {
	return func(c *Client) {
		c.escapeQuery = escape
	}
}

// WithTimeout bounds each request of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}
