package dto

// Response is the success envelope every endpoint returns. Failed requests
// are rendered by the error-handling middleware instead.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// OK wraps a payload in the success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// UpdateResult acknowledges a partial update.
type UpdateResult struct {
	Updated bool `json:"updated"`
}
