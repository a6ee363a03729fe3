package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry()

	tests := []struct {
		input string
		want  string
	}{
		{input: "projects", want: "projects"},
		{input: "Projects", want: "projects"},
		{input: "PROJECTS", want: "projects"},
		{input: "taskLists", want: "taskLists"},
		{input: "tasklists", want: "taskLists"},
		{input: "task-lists", want: "taskLists"},
		{input: "task_lists", want: "taskLists"},
		{input: "TaskLists", want: "taskLists"},
		{input: "message-replies", want: "messageReplies"},
		{input: "current_user", want: "currentUser"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			name, factory, err := registry.Lookup(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, name)
			assert.NotNil(t, factory)
		})
	}
}

func TestRegistry_UnknownResource(t *testing.T) {
	t.Parallel()

	_, _, err := DefaultRegistry().Lookup("not-a-real-resource")
	require.Error(t, err)
	assert.True(t, teamwork.IsUnknownResource(err))
	require.ErrorIs(t, err, teamwork.ErrUnknownResource)
	assert.Equal(t, "resource `not-a-real-resource` does not exist", err.Error())

	for _, name := range []string{"ta$sks", "tasks!!", "t.a.s.k.s", "projects.json", "task/lists", ""} {
		_, _, err := DefaultRegistry().Lookup(name)
		assert.True(t, teamwork.IsUnknownResource(err), name)
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	names := DefaultRegistry().Names()

	assert.Len(t, names, 18)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "messageReplies")
	assert.Contains(t, names, "workload")
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("timeEntries", func(httpClient *http.Client) *Resource {
		return NewResource("timeEntries", httpClient,
			Operation{Name: "all", Method: methodGet, Path: "time_entries.json", Key: "time-entries"})
	})

	name, factory, err := registry.Lookup("time-entries")
	require.NoError(t, err)
	assert.Equal(t, "timeEntries", name)
	assert.Equal(t, []string{"all"}, factory(nil).Operations())
	assert.Equal(t, []string{"timeEntries"}, registry.Names())
}
