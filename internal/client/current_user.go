package client

import (
	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewCurrentUser creates the resource for the user owning the API key.
func NewCurrentUser(httpClient *http.Client) *Resource {
	return NewResource("currentUser", httpClient,
		Operation{Name: "get", Method: methodGet, Path: "me.json"},
		Operation{Name: "summary", Method: methodGet, Path: "stats.json"},
		Operation{Name: "getStatus", Method: methodGet, Path: "me/status.json"},
		Operation{
			Name:   "createStatus",
			Method: methodPost,
			Path:   "me/status.json",
			Body: func(_ []any, params teamwork.Params) any {
				notify := constants.No
				if !isFalsy(params["notify"]) {
					notify = constants.Yes
				}

				return userStatusBody(params["status"], notify)
			},
		},
		Operation{
			Name:   "updateStatus",
			Method: methodPut,
			Path:   "me/status/{statusId}.json",
			IDs:    []IDParam{pathID("statusId", "You must specify a valid status ID when updating a status.")},
			Rules: []teamwork.ValidationRule{
				requiredField("status", "`status` is a required field when updating a person status."),
				statusMaxLength,
			},
			Body: func(_ []any, params teamwork.Params) any {
				notify := constants.No
				if value := params["notify"]; value == constants.Yes || value == true {
					notify = constants.Yes
				}

				return userStatusBody(params["status"], notify)
			},
		},
		Operation{
			Name:   "deleteStatus",
			Method: methodDelete,
			Path:   "me/status/{statusId}.json",
			IDs:    []IDParam{pathID("statusId", "You must specify a valid status ID when deleting a status.")},
		},
	)
}

func userStatusBody(status any, notify string) map[string]any {
	return map[string]any{
		"userstatus": map[string]any{
			"status": status,
			"notify": notify,
		},
	}
}
