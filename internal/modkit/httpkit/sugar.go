package httpkit

import (
	"net/http"

	phttp "c4ctexts/internal/platform/net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a bound and validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// PostBind mounts a bound POST handler that writes its own Response (downloads)
func PostBind[T any](r Router, path string, h func(*http.Request, T) Response) {
	phttp.PostBind(r, path, h)
}
