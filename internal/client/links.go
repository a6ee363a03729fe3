package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewLinks creates the links resource.
func NewLinks(httpClient *http.Client) *Resource {
	return NewResource("links", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "links.json", Key: "projects"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/links.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting links for a project.")},
			Key:    "project",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "links/{linkId}.json",
			IDs:    []IDParam{pathID("linkId", "You must specify a valid link ID when getting a link.")},
			Key:    "link",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "projects/{projectId}/links.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when creating a link.")},
			Rules: []teamwork.ValidationRule{
				requiredField("code", "`code` is a required field when creating new link."),
			},
			Wrap: "link",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "links/{linkId}.json",
			IDs:    []IDParam{pathID("linkId", "You must specify a valid link ID when updating a link.")},
			Wrap:   "link",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "links/{linkId}.json",
			IDs:    []IDParam{pathID("linkId", "You must specify a valid link ID when deleting a link.")},
		},
	)
}
