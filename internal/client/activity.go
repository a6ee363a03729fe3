package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
)

// NewActivity creates the latest activity resource.
func NewActivity(httpClient *http.Client) *Resource {
	return NewResource("activity", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "latestActivity.json", Key: "activity"},
		Operation{
			Name:   "forProject",
			Method: methodGet,
			Path:   "projects/{projectId}/latestActivity.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting activity for a project.")},
			Key:    "activity",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "activity/{activityId}.json",
			IDs:    []IDParam{pathID("activityId", "You must specify a valid activity ID when deleting an activity.")},
		},
	)
}
