// Package twclient provides the main entry point for creating Teamwork API clients
package twclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/teamwork/internal/client"
	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// New creates a new Teamwork API client. The caller's config is not modified.
func New(config *teamwork.Config) (teamwork.Client, error) {
	if config == nil {
		return nil, teamwork.ErrConfigRequired
	}

	normalized := *config

	// Normalize the account URL
	switch {
	case normalized.BaseURL != "":
		normalized.BaseURL = normalizeURL(normalized.BaseURL)
	case normalized.Domain != "":
		normalized.BaseURL = normalizeURL(normalized.Domain)
	}

	client, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithAPIKey creates a client for baseURL authenticated with apiKey.
func NewWithAPIKey(baseURL, apiKey string) (teamwork.Client, error) {
	return New(&teamwork.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NewWithDomain creates a client for an account domain such as "acme.teamwork.com".
func NewWithDomain(domain, apiKey string) (teamwork.Client, error) {
	return New(&teamwork.Config{
		Domain: domain,
		APIKey: apiKey,
	})
}

// normalizeURL trims trailing slashes and defaults the scheme to https.
func normalizeURL(endpoint string) string {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = constants.DefaultScheme + endpoint
	}

	return endpoint
}
