package types

import "context"

type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"

	HeaderRequestID = "X-Request-ID"
)

// GetRequestID returns the request ID from the context, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}
