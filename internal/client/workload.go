package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// NewWorkload creates the workload report resource. Its date range is passed as query parameters.
func NewWorkload(httpClient *http.Client) *Resource {
	return NewResource("workload", httpClient,
		Operation{
			Name:          "get",
			Method:        methodGet,
			Path:          "workload.json",
			ValidateQuery: true,
			Rules: []teamwork.ValidationRule{
				requiredField("startDate", "`startDate` is required when getting workload report."),
				requiredField("endDate", "`endDate` is required when getting workload report."),
			},
		},
	)
}
