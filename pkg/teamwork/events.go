package teamwork

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/teamwork/internal/constants"
)

// Publisher sends a message on a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// CallEvent describes one completed API call. Headers and bodies are never included.
type CallEvent struct {
	Resource   string    `json:"resource,omitempty"`
	Operation  string    `json:"operation,omitempty"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	DurationMS int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ConnectEvents opens a NATS connection for publishing call events.
func ConnectEvents(url string, opts ...nats.Option) (*nats.Conn, error) {
	opts = append([]nats.Option{
		nats.Name("teamwork-client"),
		nats.Timeout(constants.ShortHTTPTimeout),
	}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return conn, nil
}

// CallEventInterceptor publishes a CallEvent for every response. Publish
// failures are logged and never fail the call.
func CallEventInterceptor(publisher Publisher, subject string, logger Logger) ResponseInterceptor {
	if subject == "" {
		subject = constants.DefaultEventSubject
	}

	return func(ctx context.Context, req *Request, resp *Response) error {
		event := CallEvent{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			DurationMS: elapsed(req).Milliseconds(),
			Timestamp:  time.Now().UTC(),
		}

		if info, ok := OperationFromContext(ctx); ok {
			event.Resource = info.Resource
			event.Operation = info.Operation
		}

		if resp.Error != nil {
			event.Error = resp.Error.Error()
		}

		data, err := json.Marshal(event)
		if err == nil {
			err = publisher.Publish(subject, data)
		}

		if err != nil && logger != nil {
			logger.Warn("Failed to publish call event", map[string]interface{}{
				"subject": subject,
				"error":   err.Error(),
			})
		}

		return nil
	}
}
