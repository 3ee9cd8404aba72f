package ctxutil

import (
	"context"
)

type ctxKey string

const (
	operatorKey  ctxKey = "operator"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// WithOperator stores the authenticated operator and role in the context.
func WithOperator(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, operatorKey, subject)
	return context.WithValue(ctx, roleKey, role)
}

// OperatorFromCtx extracts the operator name from the context.
// Returns "" and false if absent.
func OperatorFromCtx(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(operatorKey).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// RoleFromCtx extracts the operator role from the context.
func RoleFromCtx(ctx context.Context) string {
	r, _ := ctx.Value(roleKey).(string)
	return r
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
