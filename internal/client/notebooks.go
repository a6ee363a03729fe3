package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewNotebooks creates the notebooks resource.
func NewNotebooks(httpClient *http.Client) *Resource {
	return NewResource("notebooks", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "notebooks.json", Key: "projects"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/notebooks.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when getting notebooks for a project.")},
			Key:    "project",
		},
		Operation{
			Name:   "allForCategory",
			Method: methodGet,
			Path:   "notebookCategories/{categoryId}/notebooks.json",
			IDs:    []IDParam{pathID("categoryId", "A valid category ID is required when getting notebooks for a category.")},
			Key:    "projects",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "notebooks/{notebookId}.json",
			IDs:    []IDParam{pathID("notebookId", "A valid notebook ID is required when getting notebook by ID.")},
			Key:    "notebook",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "projects/{projectId}/notebooks.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when creating a notebook.")},
			Rules: []teamwork.ValidationRule{
				requiredField("content", "`content` is a required field when creating new notebook."),
				requiredField("name", "`name` is a required field when creating new notebook."),
			},
			Wrap: "notebook",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "notebooks/{notebookId}.json",
			IDs:    []IDParam{pathID("notebookId", "You must specify a valid notebook ID when updating a notebook.")},
			Wrap:   "notebook",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "notebooks/{notebookId}.json",
			IDs:    []IDParam{pathID("notebookId", "You must specify a valid notebook ID when deleting a notebook.")},
		},
		Operation{
			Name:   "lock",
			Method: methodPut,
			Path:   "notebooks/{notebookId}/lock.json",
			IDs:    []IDParam{pathID("notebookId", "You must specify a valid notebook ID when marking a notebook as locked.")},
		},
		Operation{
			Name:   "unlock",
			Method: methodPut,
			Path:   "notebooks/{notebookId}/unlock.json",
			IDs:    []IDParam{pathID("notebookId", "You must specify a valid notebook ID when marking a notebook as unlocked.")},
		},
		Operation{
			Name:   "copyToProject",
			Method: methodPut,
			Path:   "notebooks/{notebookId}/copy.json",
			IDs: []IDParam{
				pathID("notebookId", "You must specify a valid notebook ID when copying notebook to a project."),
				pathID("projectId", "You must specify a valid project ID when copying a notebook to a project."),
			},
			Body: targetProjectBody,
		},
		Operation{
			Name:   "moveToProject",
			Method: methodPut,
			Path:   "notebooks/{notebookId}/move.json",
			IDs: []IDParam{
				pathID("notebookId", "You must specify a valid notebook ID when moving notebook to a project."),
				pathID("projectId", "You must specify a valid project ID when moving a notebook to a project."),
			},
			Body: targetProjectBody,
		},
	)
}

// targetProjectBody sends the second identifier as the destination project.
func targetProjectBody(ids []any, _ teamwork.Params) any {
	return map[string]any{"projectId": ids[1]}
}
