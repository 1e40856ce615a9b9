package context

import (
	"context"
)

type ctxKey int

// requestIDKey stores the request id assigned by the logging middleware.
const requestIDKey ctxKey = iota

// SetRequestIDToContext returns a copy of ctx carrying requestID.
func SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id stored in ctx, if any.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return "", false
	}
	return requestID, true
}
