package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewTasks creates the tasks resource. Tasks are "todo-items" on the wire.
func NewTasks(httpClient *http.Client) *Resource {
	return NewResource("tasks", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "tasks.json", Key: "todo-items"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/tasks.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when getting tasks for project.")},
			Key:    "todo-items",
		},
		Operation{
			Name:   "allForTaskList",
			Method: methodGet,
			Path:   "tasklists/{taskListId}/tasks.json",
			IDs:    []IDParam{pathID("taskListId", "A valid task list ID is required when getting tasks for task list.")},
			Key:    "todo-items",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "tasks/{taskId}.json",
			IDs:    []IDParam{pathID("taskId", "A valid task ID is required when getting a task.")},
			Key:    "todo-item",
		},
		Operation{
			Name:   "getTaskDependencies",
			Method: methodGet,
			Path:   "tasks/{taskId}/dependencies.json",
			IDs:    []IDParam{pathID("taskId", "A valid task ID is required when getting task dependencies.")},
			Key:    "dependents",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "tasklists/{taskListId}/tasks.json",
			IDs:    []IDParam{pathID("taskListId", "A valid task list ID is required when creating a task.")},
			Rules: []teamwork.ValidationRule{
				requiredField("content", "`content` is a required field when creating new task."),
			},
			Wrap: "todo-item",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "tasks/{taskId}.json",
			IDs:    []IDParam{pathID("taskId", "A valid task ID is required when updating a task.")},
			Rules: []teamwork.ValidationRule{
				requiredField("content", "`content` is a required field when updating a task."),
			},
			Wrap: "todo-item",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "tasks/{taskId}.json",
			IDs:    []IDParam{pathID("taskId", "You must specify a valid task ID when deleting a task.")},
		},
		Operation{
			Name:   "markComplete",
			Method: methodPut,
			Path:   "tasks/{taskId}/complete.json",
			IDs:    []IDParam{pathID("taskId", "You must specify a valid task ID when marking task complete.")},
		},
		Operation{
			Name:   "markUncomplete",
			Method: methodPut,
			Path:   "tasks/{taskId}/uncomplete.json",
			IDs:    []IDParam{pathID("taskId", "You must specify a valid task ID when marking task uncomplete.")},
		},
		Operation{
			Name:   "getFollowers",
			Method: methodGet,
			Path:   "tasks/{taskId}/followers.json",
			IDs:    []IDParam{pathID("taskId", "You must specify a valid task ID when getting task followers.")},
		},
		Operation{
			Name:   "setFollowers",
			Method: methodPut,
			Path:   "tasks/{taskId}.json",
			IDs:    []IDParam{pathID("taskId", "You must specify a valid task ID when setting task followers.")},
			Wrap:   "todo-item",
		},
	)
}
