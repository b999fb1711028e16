package solver

import "context"

type contextKey string

const requestIDKey contextKey = "solve_request_id"

// WithRequestID attaches a submission correlation id to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom extracts the correlation id, or "" when none is set.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
