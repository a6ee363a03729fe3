package client

import (
	"github.com/fivetwenty-io/teamwork/internal/http"
)

// NewAccount creates the account resource.
func NewAccount(httpClient *http.Client) *Resource {
	return NewResource("account", httpClient,
		Operation{Name: "getDetails", Method: methodGet, Path: "account.json", Key: "account"},
		Operation{Name: "getAuthentication", Method: methodGet, Path: "authenticate.json", Key: "account"},
	)
}
