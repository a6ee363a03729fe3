package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewProjects creates the projects resource.
func NewProjects(httpClient *http.Client) *Resource {
	return NewResource("projects", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "projects.json", Key: "projects"},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "projects/{projectId}.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting a project.")},
			Key:    "project",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "projects.json",
			Rules: []teamwork.ValidationRule{
				requiredField("name", "`name` is a required field when creating new project."),
			},
			Wrap: "project",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "projects/{projectId}.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when updating a project.")},
			Wrap:   "project",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "projects/{projectId}.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when deleting a project.")},
		},
		Operation{
			Name:   "getBox",
			Method: methodGet,
			Path:   "projects/{projectId}/box.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting a project box.")},
		},
		Operation{
			Name:   "getRates",
			Method: methodGet,
			Path:   "projects/{projectId}/rates.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when rates for a project.")},
		},
		Operation{
			Name:   "setRates",
			Method: methodPost,
			Path:   "projects/{projectId}/rates.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID setting rates for a project.")},
			Wrap:   "rates",
		},
		Operation{Name: "allStarred", Method: methodGet, Path: "projects/starred.json", Key: "projects"},
		Operation{
			Name:   "applyStar",
			Method: methodPut,
			Path:   "projects/{projectId}/star.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when starring a project.")},
		},
		Operation{
			Name:   "removeStar",
			Method: methodPut,
			Path:   "projects/{projectId}/unstar.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when removing a project star.")},
		},
	)
}
