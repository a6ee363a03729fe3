package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewCompanies creates the companies resource.
func NewCompanies(httpClient *http.Client) *Resource {
	return NewResource("companies", httpClient,
		Operation{Name: "all", Method: methodGet, Path: "companies.json", Key: "companies"},
		Operation{
			Name:   "allForProject",
			Method: methodGet,
			Path:   "projects/{projectId}/companies.json",
			IDs:    []IDParam{pathID("projectId", "You must pass a valid project ID when getting companies for a project.")},
			Key:    "companies",
		},
		Operation{
			Name:   "get",
			Method: methodGet,
			Path:   "companies/{companyId}.json",
			IDs:    []IDParam{pathID("companyId", "You must specify a valid company ID when getting a company.")},
			Key:    "company",
		},
		Operation{
			Name:   "create",
			Method: methodPost,
			Path:   "companies.json",
			Rules: []teamwork.ValidationRule{
				requiredField("name", "`name` is a required field when creating new company."),
			},
			Wrap: "company",
		},
		Operation{
			Name:   "update",
			Method: methodPut,
			Path:   "companies/{companyId}.json",
			IDs:    []IDParam{pathID("companyId", "You must specify a valid company ID when updating a company.")},
			Wrap:   "company",
		},
		Operation{
			Name:   "delete",
			Method: methodDelete,
			Path:   "companies/{companyId}.json",
			IDs:    []IDParam{pathID("companyId", "You must specify a valid company ID when deleting a company.")},
		},
	)
}
