package http

import "net/http"

// GetJSON mounts a pure JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a pure JSON handler for POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(h))
}

// PostBind mounts a POST handler that builds its own Response from a bound body
func PostBind[T any](r Router, path string, h func(*http.Request, T) Response) {
	r.Post(path, BindHandler(h))
}
