package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewTaskLists creates the task lists resource.
func NewTaskLists(httpClient *http.Client) *Resource {
	return NewResource("taskLists", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "tasklists.json", Key: "tasklists"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/tasklists.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when getting task lists for project.")},
			Key:    "tasklists",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "tasklists/{taskListId}.json",
			IDs:    []IDParam{pathID("taskListId", "A valid task list ID is required when getting a task list.")},
			Key:    "todo-list",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "projects/{projectId}/tasklists.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when creating a task list.")},
			Rules: []teamwork.ValidationRule{
				requiredField("name", "`name` is a required field when creating new task list."),
			},
			Wrap:   "todo-list",
			Finish: addTaskListID,
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "tasklists/{taskListId}.json",
			IDs:    []IDParam{pathID("taskListId", "A valid task list ID is required when updating a task list.")},
			Wrap:   "todo-list",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "tasklists/{taskListId}.json",
			IDs:    []IDParam{pathID("taskListId", "You must specify a valid task list ID when deleting a task.")},
		},
	)
}

// addTaskListID copies TASKLISTID to id, which the create response omits.
func addTaskListID(result any) any {
	object, ok := result.(map[string]any)
	if !ok {
		return result
	}

	if _, exists := object["id"]; !exists {
		if id, found := object["TASKLISTID"]; found {
			object["id"] = id
		}
	}

	return object
}
