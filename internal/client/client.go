package client

import (
	"fmt"
	"sync"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// Client implements the teamwork.Client interface.
type Client struct {
	httpClient *http.Client
	registry   *Registry

	mutex    sync.Mutex
	handlers map[string]*Resource
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *teamwork.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.EscapeQuery {
		httpOpts = append(httpOpts, http.WithEscapedQuery(true))
	}

	if config.Transport != nil {
		httpOpts = append(httpOpts, http.WithTransport(config.Transport))
	}

	chain := config.Interceptors
	if config.RequestsPerMinute > 0 {
		// Each client gets its own limiter; the caller's chain stays untouched.
		if chain == nil {
			chain = teamwork.NewInterceptorChain()
		} else {
			chain = chain.Clone()
		}

		chain.AddRequestInterceptor(teamwork.RateLimitInterceptor(teamwork.NewRateLimiter(config.RequestsPerMinute)))
	}

	if chain != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts
}

// New creates a new Teamwork API client. A Domain is used when BaseURL is empty.
func New(config *teamwork.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultScheme + config.Domain
	}

	credentials := teamwork.Credentials{APIKey: config.APIKey, BaseURL: baseURL}
	httpClient := http.NewClient(credentials, createHTTPClientOptions(config)...)

	return NewWithHTTPClient(httpClient, DefaultRegistry()), nil
}

// NewWithHTTPClient creates a client over an existing HTTP client and registry.
// Every handler it returns shares httpClient.
func NewWithHTTPClient(httpClient *http.Client, registry *Registry) *Client {
	if registry == nil {
		registry = DefaultRegistry()
	}

	return &Client{
		httpClient: httpClient,
		registry:   registry,
		handlers:   make(map[string]*Resource),
	}
}

// Resolve implements teamwork.Client.Resolve. Handlers are created on first
// use and reused afterwards.
func (c *Client) Resolve(name string) (teamwork.ResourceHandler, error) {
	canonical, factory, err := c.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	return c.handler(canonical, factory), nil
}

func (c *Client) handler(name string, factory Factory) *Resource {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	handler, ok := c.handlers[name]
	if !ok {
		handler = factory(c.httpClient)
		c.handlers[name] = handler
	}

	return handler
}

// builtin returns the registered handler for name, falling back to factory
// when a custom registry does not provide one.
func (c *Client) builtin(name string, factory Factory) teamwork.ResourceHandler {
	handler, err := c.Resolve(name)
	if err == nil {
		return handler
	}

	return c.handler(name, factory)
}

// Resources implements teamwork.Client.Resources.
func (c *Client) Resources() []string {
	return c.registry.Names()
}

// HTTPClient returns the client shared by every handler.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Credentials implements teamwork.Client.Credentials.
func (c *Client) Credentials() teamwork.Credentials {
	return c.httpClient.Credentials()
}

// SetAPIKey implements teamwork.Client.SetAPIKey.
func (c *Client) SetAPIKey(apiKey string) {
	c.httpClient.SetAPIKey(apiKey)
}

// SetBaseURL implements teamwork.Client.SetBaseURL.
func (c *Client) SetBaseURL(baseURL string) {
	c.httpClient.SetBaseURL(baseURL)
}

// LastRequest implements teamwork.Client.LastRequest.
func (c *Client) LastRequest() *teamwork.Request {
	return c.httpClient.LastRequest()
}

// LastResponse implements teamwork.Client.LastResponse.
func (c *Client) LastResponse() *teamwork.ResponseEnvelope {
	return c.httpClient.LastResponse()
}

// Resource client accessors

// Account implements teamwork.ResourceClients.Account.
func (c *Client) Account() teamwork.ResourceHandler {
	return c.builtin("account", NewAccount)
}

// Activity implements teamwork.ResourceClients.Activity.
func (c *Client) Activity() teamwork.ResourceHandler {
	return c.builtin("activity", NewActivity)
}

// Billing implements teamwork.ResourceClients.Billing.
func (c *Client) Billing() teamwork.ResourceHandler {
	return c.builtin("billing", NewBilling)
}

// Comments implements teamwork.ResourceClients.Comments.
func (c *Client) Comments() teamwork.ResourceHandler {
	return c.builtin("comments", NewComments)
}

// Companies implements teamwork.ResourceClients.Companies.
func (c *Client) Companies() teamwork.ResourceHandler {
	return c.builtin("companies", NewCompanies)
}

// CurrentUser implements teamwork.ResourceClients.CurrentUser.
func (c *Client) CurrentUser() teamwork.ResourceHandler {
	return c.builtin("currentUser", NewCurrentUser)
}

// Links implements teamwork.ResourceClients.Links.
func (c *Client) Links() teamwork.ResourceHandler {
	return c.builtin("links", NewLinks)
}

// MessageReplies implements teamwork.ResourceClients.MessageReplies.
func (c *Client) MessageReplies() teamwork.ResourceHandler {
	return c.builtin("messageReplies", NewMessageReplies)
}

// Messages implements teamwork.ResourceClients.Messages.
func (c *Client) Messages() teamwork.ResourceHandler {
	return c.builtin("messages", NewMessages)
}

// Milestones implements teamwork.ResourceClients.Milestones.
func (c *Client) Milestones() teamwork.ResourceHandler {
	return c.builtin("milestones", NewMilestones)
}

// Notebooks implements teamwork.ResourceClients.Notebooks.
func (c *Client) Notebooks() teamwork.ResourceHandler {
	return c.builtin("notebooks", NewNotebooks)
}

// People implements teamwork.ResourceClients.People.
func (c *Client) People() teamwork.ResourceHandler {
	return c.builtin("people", NewPeople)
}

// Projects implements teamwork.ResourceClients.Projects.
func (c *Client) Projects() teamwork.ResourceHandler {
	return c.builtin("projects", NewProjects)
}

// Risks implements teamwork.ResourceClients.Risks.
func (c *Client) Risks() teamwork.ResourceHandler {
	return c.builtin("risks", NewRisks)
}

// Tags implements teamwork.ResourceClients.Tags.
func (c *Client) Tags() teamwork.ResourceHandler {
	return c.builtin("tags", NewTags)
}

// TaskLists implements teamwork.ResourceClients.TaskLists.
func (c *Client) TaskLists() teamwork.ResourceHandler {
	return c.builtin("taskLists", NewTaskLists)
}

// Tasks implements teamwork.ResourceClients.Tasks.
func (c *Client) Tasks() teamwork.ResourceHandler {
	return c.builtin("tasks", NewTasks)
}

// Workload implements teamwork.ResourceClients.Workload.
func (c *Client) Workload() teamwork.ResourceHandler {
	return c.builtin("workload", NewWorkload)
}

var _ teamwork.Client = (*Client)(nil)
