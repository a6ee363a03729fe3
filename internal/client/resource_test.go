package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

var errTestConnection = errors.New("dial tcp: connection refused")

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResource_Call(t *testing.T) {
	t.Parallel()

	t.Run("unwraps the declared response key", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{body: `{"project": {"id": 42, "name": "X"}, "STATUS": "OK"}`}
		client := NewTestClient(t, transport)

		project, err := client.Projects().Get(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": json.Number("42"), "name": "X"}, project)

		req := transport.last()
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "https://acme.teamwork.com/projects/42.json", req.URL)
	})

	t.Run("query keeps insertion order", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{body: `{"projects": []}`}
		client := NewTestClient(t, transport)

		projects, err := client.Projects().All(context.Background(), teamwork.NewQuery().Add("page", 2).Add("pageSize", 50))
		require.NoError(t, err)
		assert.Equal(t, []any{}, projects)
		assert.Equal(t, "https://acme.teamwork.com/projects.json?page=2&pageSize=50", transport.last().URL)
	})

	t.Run("missing required field makes no request", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		client := NewTestClient(t, transport)

		_, err := client.Tasks().Create(context.Background(), teamwork.Params{"description": "no content"}, 7)
		require.Error(t, err)
		assert.True(t, teamwork.IsValidation(err))
		require.ErrorIs(t, err, teamwork.ErrInvalidRequest)
		assert.Equal(t, "`content` is a required field when creating new task.", err.Error())
		assert.Equal(t, 0, transport.calls())
	})

	t.Run("identifiers are checked before fields", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		client := NewTestClient(t, transport)

		_, err := client.Tasks().Create(context.Background(), teamwork.Params{}, []int{1})
		require.Error(t, err)
		assert.Equal(t, "A valid task list ID is required when creating a task.", err.Error())
		assert.Equal(t, 0, transport.calls())
	})

	t.Run("invalid identifiers make no request", func(t *testing.T) {
		t.Parallel()

		for _, id := range []any{nil, []int{42}, 4.2, map[string]any{"id": 1}, true} {
			transport := &fakeTransport{}
			client := NewTestClient(t, transport)

			_, err := client.Projects().Get(context.Background(), id)
			require.ErrorIs(t, err, teamwork.ErrInvalidRequest)
			assert.Equal(t, "You must specify a valid project ID when getting a project.", err.Error())
			assert.Equal(t, 0, transport.calls())
		}
	})

	t.Run("string and integer identifiers are accepted", func(t *testing.T) {
		t.Parallel()

		for _, id := range []any{"42", 42, int64(42), uint(42), json.Number("42")} {
			transport := &fakeTransport{body: `{"project": {}}`}
			client := NewTestClient(t, transport)

			_, err := client.Projects().Get(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, "https://acme.teamwork.com/projects/42.json", transport.last().URL)
		}
	})

	t.Run("missing identifier", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		client := NewTestClient(t, transport)

		_, err := client.Projects().Call(context.Background(), "applyStar", teamwork.Args{})
		assert.Equal(t, "You must specify a valid project ID when starring a project.", err.Error())
		assert.Equal(t, 0, transport.calls())
	})

	t.Run("too many identifiers", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		client := NewTestClient(t, transport)

		_, err := client.Projects().Call(context.Background(), "get", teamwork.Args{IDs: []any{1, 2}})
		require.ErrorIs(t, err, teamwork.ErrTooManyIDs)
		require.ErrorIs(t, err, teamwork.ErrInvalidRequest)
		assert.Equal(t, 0, transport.calls())
	})

	t.Run("unknown operation", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		client := NewTestClient(t, transport)

		_, err := client.Projects().Call(context.Background(), "explode", teamwork.Args{})
		require.ErrorIs(t, err, teamwork.ErrUnknownOperation)

		_, err = client.Account().All(context.Background(), nil)
		require.ErrorIs(t, err, teamwork.ErrUnknownOperation)
		assert.Equal(t, 0, transport.calls())
	})

	t.Run("operation names ignore case", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{body: `{"projects": []}`}
		client := NewTestClient(t, transport)

		_, err := client.Projects().Call(context.Background(), "ALLSTARRED", teamwork.Args{})
		require.NoError(t, err)
		assert.Equal(t, "https://acme.teamwork.com/projects/starred.json", transport.last().URL)
	})

	t.Run("wrapped body is sent for empty params", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		client := NewTestClient(t, transport)

		_, err := client.Projects().Update(context.Background(), 5, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"project": {}}`, string(transport.last().Body))
	})

	t.Run("caller params are not modified", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{}
		client := NewTestClient(t, transport)

		params := teamwork.Params{"name": "Bug", "color": "red"}

		_, err := client.Tags().Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "red", params["color"])
	})

	t.Run("missing envelope key", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{body: `{"STATUS": "OK"}`}
		client := NewTestClient(t, transport)

		_, err := client.Projects().Get(context.Background(), 1)
		require.ErrorIs(t, err, teamwork.ErrMissingEnvelopeKey)
	})

	t.Run("connection failure", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{err: errTestConnection}
		client := NewTestClient(t, transport)

		_, err := client.Projects().Get(context.Background(), 1)
		require.ErrorIs(t, err, teamwork.ErrRequestFailed)
		require.ErrorIs(t, err, errTestConnection)
		assert.Equal(t, 0, teamwork.StatusCode(err))
		assert.Nil(t, client.LastResponse())
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		transport := &fakeTransport{status: constants.HTTPStatusInternalServerError, body: `{"MESSAGE": "boom"}`}
		client := NewTestClient(t, transport)

		_, err := client.Tasks().Call(context.Background(), "markComplete", teamwork.Args{IDs: []any{3}})
		require.ErrorIs(t, err, teamwork.ErrRequestFailed)
		assert.Equal(t, constants.HTTPStatusInternalServerError, teamwork.StatusCode(err))
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestResource_UnauthorizedOnEveryHandler(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry()

	for _, name := range registry.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			transport := &fakeTransport{status: constants.HTTPStatusUnauthorized}
			client := NewTestClient(t, transport)

			handler, err := client.Resolve(name)
			require.NoError(t, err)

			resource, ok := handler.(*Resource)
			require.True(t, ok)

			for _, op := range resource.operations {
				_, err = resource.Call(context.Background(), op.Name, validArgs(op))
				require.Error(t, err, op.Name)
				assert.True(t, teamwork.IsNotAuthorized(err), op.Name)
			}

			assert.Len(t, transport.requests, len(resource.operations))
			assert.Equal(t, testAPIKey, client.Credentials().APIKey)
			assert.Equal(t, constants.HTTPStatusUnauthorized, client.LastResponse().StatusCode)
		})
	}
}

func TestResource_RepeatedCalls(t *testing.T) {
	t.Parallel()

	transport := &fakeTransport{body: `{"todo-item": {"id": "9", "content": "Ship it"}}`}
	client := NewTestClient(t, transport)

	first, err := client.Tasks().Get(context.Background(), 9)
	require.NoError(t, err)

	second, err := client.Tasks().Get(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, transport.calls())
	assert.Same(t, transport.last(), client.LastRequest())
}

func TestResource_Operations(t *testing.T) {
	t.Parallel()

	resource := NewAccount(nil)

	assert.Equal(t, "account", resource.Name())
	assert.Equal(t, []string{"getDetails", "getAuthentication"}, resource.Operations())
}
