package lambda

import "context"

// Request is the transport-neutral envelope handed to handlers. Both
// the API Gateway entrypoint and the HTTP server build one of these, so
// handler logic stays identical across deployment modes.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// Response is the transport-neutral result returned by handlers.
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is the signature shared by envelope handlers.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)
