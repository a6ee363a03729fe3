package client

import (
	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

var (
	personStatusFields = []string{"status", "notify"}
	statusMaxLength    = teamwork.ValidationRule{
		Field:            "status",
		MaxLength:        constants.MaxStatusLength,
		MaxLengthMessage: "`status` for a person cannot be longer than 160 characters.",
	}
)

// NewPeople creates the people resource, including person statuses.
//
//nolint:funlen // Declarative operation table
func NewPeople(httpClient *http.Client) *Resource {
	return NewResource("people", httpClient,
		Operation{Name: "current", Method: methodGet, Path: "me.json", Key: "person"},
		Operation{Name: "getCurrentUserSummary", Method: methodGet, Path: "stats.json"},
		Operation{Name: "all", Method: methodGet, Path: "people.json", Key: "people"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/people.json",
			IDs:    []IDParam{pathID("projectId", "You must specify a valid project ID when getting all people on a project.")},
			Key:    "people",
		},
		Operation{
			Name:   "allForCompany",
			Method: methodGet,
			Path:   "companies/{companyId}/people.json",
			IDs:    []IDParam{pathID("companyId", "You must specify a valid company ID when getting all people for a company.")},
			Key:    "people",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "people/{personId}.json",
			IDs:    []IDParam{pathID("personId", "You must specify a valid person ID when getting a person by ID.")},
			Key:    "person",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "people/{personId}.json",
			IDs:    []IDParam{pathID("personId", "You must specify a valid person ID when updating a person.")},
			Wrap:   "person",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "people/{personId}.json",
			IDs:    []IDParam{pathID("personId", "You must specify a valid person ID when deleting a person.")},
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "people.json",
			Rules: []teamwork.ValidationRule{
				requiredField("first-name", "`first-name` is a required field when creating new person."),
				requiredField("last-name", "`last-name` is a required field when creating new person."),
				requiredField("email-address", "`email-address` is a required field when creating new person."),
				requiredField("user-name", "`user-name` is a required field when creating new person."),
			},
			Wrap: "person",
		},
		Operation{Name: "getApiKeys", Method: methodGet, Path: "people/APIKeys.json", Key: "people"},
		Operation{
			Name:   "unassignAllTasks",
			Method: methodPut,
			Path:   "people/{personId}.json",
			IDs:    []IDParam{pathID("personId", "You must specify a valid person ID when unassigning al ltasks.")},
			Body: func(_ []any, _ teamwork.Params) any {
				return map[string]any{"person": map[string]any{"unassignFromAll": "1"}}
			},
		},
		Operation{
			Name:    "createStatus",
			Method:  methodPost,
			Path:    "people/{personId}/status.json",
			IDs:     []IDParam{pathID("personId", "You must specify a valid person ID when creating a status.")},
			Prepare: normalizePersonNotify,
			Rules: []teamwork.ValidationRule{
				requiredField("status", "`status` is a required field when creating new person status."),
				statusMaxLength,
			},
			Wrap: "userstatus",
			Pick: personStatusFields,
		},
		Operation{
			Name:   "getStatus",
			Method: methodGet,
			Path:   "people/{personId}/status.json",
			IDs:    []IDParam{pathID("personId", "You must specify a valid person ID when getting a person status.")},
			Key:    "userStatus",
		},
		Operation{Name: "allStatuses", Method: methodGet, Path: "people/status.json", Key: "userStatuses"},
		Operation{
			Name:    "updateStatus",
			Method:  methodPut,
			Path:    "people/status/{statusId}.json",
			IDs:     []IDParam{pathID("statusId", "You must specify a valid status ID when modifying a person status.")},
			Prepare: normalizePersonNotify,
			Rules: []teamwork.ValidationRule{
				requiredField("status", "`status` is a required field when modifying a person status."),
				statusMaxLength,
			},
			Wrap: "userstatus",
			Pick: personStatusFields,
		},
		Operation{
			Name:   "deleteStatus",
			Method: methodDelete,
			Path:   "people/status/{statusId}.json",
			IDs:    []IDParam{pathID("statusId", "You must specify a valid status when deleting a person status.")},
		},
	)
}

// normalizePersonNotify sends "no" for a missing or falsy notify and "yes"
// for true. Any other value is sent as given.
func normalizePersonNotify(params teamwork.Params) teamwork.Params {
	notify, ok := params["notify"]

	switch {
	case !ok || isFalsy(notify):
		params["notify"] = constants.No
	case notify == true:
		params["notify"] = constants.Yes
	}

	return params
}

// isFalsy treats nil, false, zero numbers, "", "0" and empty collections as false.
func isFalsy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case bool:
		return !typed
	case string:
		return typed == "" || typed == "0"
	case int:
		return typed == 0
	case int64:
		return typed == 0
	case float64:
		return typed == 0
	case []any:
		return len(typed) == 0
	case map[string]any:
		return len(typed) == 0
	default:
		return false
	}
}
