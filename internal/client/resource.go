package client

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/fivetwenty-io/teamwork/internal/http"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
)

const (
	methodGet    = "GET"
	methodPost   = "POST"
	methodPut    = "PUT"
	methodDelete = "DELETE"
)

// Names of the operations behind the ResourceHandler convenience methods.
const (
	opAll    = "all"
	opGet    = "get"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// IDParam declares one positional path identifier of an operation.
type IDParam struct {
	// Name is the placeholder in Operation.Path, e.g. "projectId" for "{projectId}".
	Name string
	// Message is returned when the value is not a string or integer.
	Message string
	// OneOf restricts the value to a fixed set of strings. OneOfMessage is
	// prefixed to the rejected value.
	OneOf        []string
	OneOfMessage string
}

// Operation is the declarative description of one API call.
type Operation struct {
	Name   string
	Method string
	// Path is relative to the account URL with {name} placeholders for IDs.
	Path string
	IDs  []IDParam

	// Rules are checked against Params, or against Query when ValidateQuery is set.
	Rules         []teamwork.ValidationRule
	ValidateQuery bool

	// Wrap nests the body under a single key, e.g. {"project": {...}}.
	Wrap string
	// Pick limits the wrapped body to these fields.
	Pick []string
	// Key is extracted from the decoded response. Empty returns the whole body.
	Key string

	// Prepare rewrites a copy of Params before validation.
	Prepare func(params teamwork.Params) teamwork.Params
	// Body replaces the Wrap and Pick handling.
	Body func(ids []any, params teamwork.Params) any
	// Finish rewrites the unwrapped result.
	Finish func(result any) any
}

// Resource implements teamwork.ResourceHandler over a table of operations.
type Resource struct {
	name       string
	httpClient *http.Client
	operations []Operation
}

// NewResource creates a resource handler bound to httpClient.
func NewResource(name string, httpClient *http.Client, operations ...Operation) *Resource {
	return &Resource{
		name:       name,
		httpClient: httpClient,
		operations: operations,
	}
}

// Name implements teamwork.ResourceHandler.Name.
func (r *Resource) Name() string {
	return r.name
}

// Operations implements teamwork.ResourceHandler.Operations.
func (r *Resource) Operations() []string {
	names := make([]string, 0, len(r.operations))
	for _, op := range r.operations {
		names = append(names, op.Name)
	}

	return names
}

// Call implements teamwork.ResourceHandler.Call.
func (r *Resource) Call(ctx context.Context, operation string, args teamwork.Args) (any, error) {
	op, err := r.lookup(operation)
	if err != nil {
		return nil, err
	}

	err = r.checkIDs(op, args.IDs)
	if err != nil {
		return nil, err
	}

	params := args.Params.Clone()
	if params == nil {
		params = teamwork.Params{}
	}

	if op.Prepare != nil {
		params = op.Prepare(params)
	}

	fields := params
	if op.ValidateQuery {
		fields = args.Query.Params()
	}

	err = teamwork.Validate(fields, op.Rules)
	if err != nil {
		return nil, err
	}

	spec := teamwork.RequestSpec{
		Method: op.Method,
		Path:   expandPath(op, args.IDs),
		Query:  args.Query,
		Body:   buildBody(op, args.IDs, params),
	}

	ctx = teamwork.WithOperation(ctx, r.name, op.Name)

	decoded, err := r.httpClient.Do(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("calling %s.%s: %w", r.name, op.Name, err)
	}

	result, err := teamwork.Unwrap(decoded, op.Key)
	if err != nil {
		return nil, fmt.Errorf("calling %s.%s: %w", r.name, op.Name, err)
	}

	if op.Finish != nil {
		result = op.Finish(result)
	}

	return result, nil
}

// All implements teamwork.ResourceHandler.All.
func (r *Resource) All(ctx context.Context, query teamwork.Query) (any, error) {
	return r.Call(ctx, opAll, teamwork.Args{Query: query})
}

// Get implements teamwork.ResourceHandler.Get.
func (r *Resource) Get(ctx context.Context, id any) (any, error) {
	return r.Call(ctx, opGet, teamwork.Args{IDs: []any{id}})
}

// Create implements teamwork.ResourceHandler.Create.
func (r *Resource) Create(ctx context.Context, params teamwork.Params, parentIDs ...any) (any, error) {
	return r.Call(ctx, opCreate, teamwork.Args{IDs: parentIDs, Params: params})
}

// Update implements teamwork.ResourceHandler.Update.
func (r *Resource) Update(ctx context.Context, id any, params teamwork.Params) (any, error) {
	return r.Call(ctx, opUpdate, teamwork.Args{IDs: []any{id}, Params: params})
}

// Delete implements teamwork.ResourceHandler.Delete.
func (r *Resource) Delete(ctx context.Context, id any) (any, error) {
	return r.Call(ctx, opDelete, teamwork.Args{IDs: []any{id}})
}

func (r *Resource) lookup(operation string) (*Operation, error) {
	for i := range r.operations {
		if strings.EqualFold(r.operations[i].Name, operation) {
			return &r.operations[i], nil
		}
	}

	return nil, fmt.Errorf("%s.%s: %w", r.name, operation, teamwork.ErrUnknownOperation)
}

// checkIDs runs before any validation or request building. A missing ID is
// reported the same way as an invalid one.
func (r *Resource) checkIDs(op *Operation, ids []any) error {
	if len(ids) > len(op.IDs) {
		return fmt.Errorf("%s.%s expects %d identifiers, got %d: %w: %w",
			r.name, op.Name, len(op.IDs), len(ids), teamwork.ErrTooManyIDs, teamwork.ErrInvalidRequest)
	}

	for i, param := range op.IDs {
		var value any
		if i < len(ids) {
			value = ids[i]
		}

		if len(param.OneOf) > 0 {
			text, ok := value.(string)
			if !ok || !slices.Contains(param.OneOf, text) {
				return &teamwork.ValidationError{Field: param.Name, Message: param.OneOfMessage + describe(value)}
			}

			continue
		}

		if !teamwork.CheckID(value) {
			message := param.Message
			if message == "" {
				message = fmt.Sprintf("You must specify a valid `%s`.", param.Name)
			}

			return &teamwork.ValidationError{Field: param.Name, Message: message}
		}
	}

	return nil
}

func expandPath(op *Operation, ids []any) string {
	path := op.Path

	for i, param := range op.IDs {
		path = strings.ReplaceAll(path, "{"+param.Name+"}", url.PathEscape(fmt.Sprint(ids[i])))
	}

	return path
}

// buildBody returns nil for verbs without a body. A wrapped body is always
// sent, even when params are empty.
func buildBody(op *Operation, ids []any, params teamwork.Params) any {
	if op.Method == methodGet || op.Method == methodDelete {
		return nil
	}

	if op.Body != nil {
		return op.Body(ids, params)
	}

	if op.Wrap == "" {
		return params
	}

	payload := params
	if len(op.Pick) > 0 {
		payload = params.Pick(op.Pick...)
	}

	return map[string]any{op.Wrap: payload}
}

func describe(value any) string {
	if value == nil {
		return ""
	}

	return fmt.Sprint(value)
}

func requiredField(field, message string) teamwork.ValidationRule {
	return teamwork.ValidationRule{Field: field, Required: true, RequiredMessage: message}
}

func pathID(name, message string) IDParam {
	return IDParam{Name: name, Message: message}
}

var _ teamwork.ResourceHandler = (*Resource)(nil)
