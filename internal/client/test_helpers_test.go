package client

import (
	"context"
	"sync"
	"testing"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

const testAPIKey = "twp_test_key"

// fakeTransport answers every request with the same canned response and
// records what it was asked to send.
type fakeTransport struct {
	mutex    sync.Mutex
	requests []*teamwork.Request
	status   int
	body     string
	err      error
}

func (f *fakeTransport) Execute(ctx context.Context, req *teamwork.Request) (*teamwork.Response, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.requests = append(f.requests, req)

	if f.err != nil {
		return nil, f.err
	}

	status := f.status
	if status == 0 {
		status = constants.HTTPStatusOK
	}

	return &teamwork.Response{StatusCode: status, Body: []byte(f.body)}, nil
}

func (f *fakeTransport) calls() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return len(f.requests)
}

func (f *fakeTransport) last() *teamwork.Request {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if len(f.requests) == 0 {
		return nil
	}

	return f.requests[len(f.requests)-1]
}

// NewTestClient creates a client whose handlers all send through transport.
func NewTestClient(t *testing.T, transport *fakeTransport) *Client {
	t.Helper()

	httpClient := http.NewClient(
		teamwork.Credentials{APIKey: testAPIKey, BaseURL: "https://acme.teamwork.com"},
		http.WithTransport(transport),
	)

	return NewWithHTTPClient(httpClient, nil)
}

// validArgs builds arguments that pass the ID checks and rules of op.
func validArgs(op Operation) teamwork.Args {
	args := teamwork.Args{Params: teamwork.Params{}}

	for _, param := range op.IDs {
		if len(param.OneOf) > 0 {
			args.IDs = append(args.IDs, param.OneOf[0])
		} else {
			args.IDs = append(args.IDs, 1)
		}
	}

	for _, rule := range op.Rules {
		var value any = "x"
		if len(rule.AllowedValues) > 0 {
			value = rule.AllowedValues[0]
		}

		if op.ValidateQuery {
			args.Query = args.Query.Add(rule.Field, value)
		} else {
			args.Params[rule.Field] = value
		}
	}

	return args
}
