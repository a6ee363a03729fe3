package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewMilestones creates the milestones resource.
func NewMilestones(httpClient *http.Client) *Resource {
	return NewResource("milestones", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "milestones.json", Key: "milestones"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/milestones.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when getting milestones for a project.")},
			Key:    "milestones",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "milestones/{milestoneId}.json",
			IDs:    []IDParam{pathID("milestoneId", "You must specify a valid milestone ID when getting a milestone.")},
			Key:    "milestone",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "projects/{projectId}/milestones.json",
			IDs:    []IDParam{pathID("projectId", "A valid project ID is required when creating a milestone.")},
			Rules: []teamwork.ValidationRule{
				requiredField("title", "`title` is a required field when creating new milestone."),
				requiredField("deadline", "`deadline` is a required field when creating new milestone."),
				requiredField("responsible-party-ids", "`responsible-party-ids` is a required field when creating new milestone."),
			},
			Wrap: "milestone",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "milestones/{milestoneId}.json",
			IDs:    []IDParam{pathID("milestoneId", "You must specify a valid milestone ID when updating a milestone.")},
			Wrap:   "milestone",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "milestones/{milestoneId}.json",
			IDs:    []IDParam{pathID("milestoneId", "You must specify a valid milestone ID when deleting a milestone.")},
		},
		Operation{
			Name:   "markComplete",
			Method: methodPut,
			Path:   "milestones/{milestoneId}/complete.json",
			IDs:    []IDParam{pathID("milestoneId", "You must specify a valid milestone ID when marking as complete.")},
		},
		Operation{
			Name:   "markUncomplete",
			Method: methodPut,
			Path:   "milestones/{milestoneId}/uncomplete.json",
			IDs:    []IDParam{pathID("milestoneId", "You must specify a valid milestone ID when marking as uncomplete.")},
		},
	)
}
