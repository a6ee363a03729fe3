package teamwork

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const operationKey contextKey = "teamwork.operation"

// OperationInfo names the resource operation a request belongs to.
type OperationInfo struct {
	Resource  string
	Operation string
}

// WithOperation tags ctx with the resource operation being executed.
func WithOperation(ctx context.Context, resource, operation string) context.Context {
	return context.WithValue(ctx, operationKey, OperationInfo{Resource: resource, Operation: operation})
}

// OperationFromContext returns the operation stored by WithOperation.
func OperationFromContext(ctx context.Context) (OperationInfo, bool) {
	info, ok := ctx.Value(operationKey).(OperationInfo)

	return info, ok
}
