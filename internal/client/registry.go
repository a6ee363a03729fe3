package client

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"

	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

// Factory creates a resource handler bound to the shared HTTP client.
type Factory func(httpClient *http.Client) *Resource

type registration struct {
	name    string
	factory Factory
}

// Registry maps resource names to factories. Lookups ignore case and the
// "-", "_" and space separators, so "task-lists", "task_lists" and "TaskLists"
// all find "taskLists". Any other punctuation fails the lookup.
type Registry struct {
	mutex   sync.RWMutex
	entries map[string]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]registration),
	}
}

// DefaultRegistry returns a registry holding every built-in resource.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.Register("account", NewAccount)
	registry.Register("activity", NewActivity)
	registry.Register("billing", NewBilling)
	registry.Register("comments", NewComments)
	registry.Register("companies", NewCompanies)
	registry.Register("currentUser", NewCurrentUser)
	registry.Register("links", NewLinks)
	registry.Register("messageReplies", NewMessageReplies)
	registry.Register("messages", NewMessages)
	registry.Register("milestones", NewMilestones)
	registry.Register("notebooks", NewNotebooks)
	registry.Register("people", NewPeople)
	registry.Register("projects", NewProjects)
	registry.Register("risks", NewRisks)
	registry.Register("tags", NewTags)
	registry.Register("taskLists", NewTaskLists)
	registry.Register("tasks", NewTasks)
	registry.Register("workload", NewWorkload)

	return registry
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries[normalizeName(name)] = registration{name: name, factory: factory}
}

// Lookup returns the canonical name and factory registered for name.
func (r *Registry) Lookup(name string) (string, Factory, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, ok := r.entries[normalizeName(name)]
	if !ok {
		return "", nil, &teamwork.UnknownResourceError{Name: name}
	}

	return entry.name, entry.factory, nil
}

// Names returns the canonical names in alphabetical order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		names = append(names, entry.name)
	}

	sort.Strings(names)

	return names
}

// normalizeName keeps names with other characters intact so they never match
// a registered key.
func normalizeName(name string) string {
	if strings.ContainsFunc(name, isForeignRune) {
		return name
	}

	return cases.Fold().String(strcase.ToLowerCamel(name))
}

func isForeignRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != ' '
}
