package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
)

// NewRisks creates the risks resource.
func NewRisks(httpClient *http.Client) *Resource {
	return NewResource("risks", httpClient,
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "risks/{riskId}.json",
			IDs:    []IDParam{pathID("riskId", "You must specify a valid risk ID when getting a risk.")},
			Key:    "risk",
		},
		Operation{Name: "all", Method: methodGet, Path: "risks.json", Key: "risks"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/risks.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting risks for a project.")},
			Key:    "risks",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "risks/{riskId}.json",
			IDs:    []IDParam{pathID("riskId", "You must specify a valid risk ID when updating a risk.")},
			Wrap:   "risk",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "risks/{riskId}.json",
			IDs:    []IDParam{pathID("riskId", "You must specify a valid risk ID when deleting a risk.")},
		},
	)
}
