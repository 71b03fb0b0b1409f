package c4c

import (
	"errors"
	"net/http"

	perr "c4ctexts/internal/platform/errors"
)

// StatusError wraps a non-2xx answer; Body is the raw text, never parsed
type StatusError struct {
	Status int
	Body   string
	Err    error
}

func newStatusError(status int, body string) *StatusError {
	detail := body
	if detail == "" {
		detail = http.StatusText(status)
	}
	return &StatusError{
		Status: status,
		Body:   body,
		Err:    perr.Upstreamf("Upstream error %d: %s", status, detail),
	}
}

// Error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *StatusError) Unwrap() error { return e.Err }

// HTTPStatus is the upstream status, not the status this service answers with
func (e *StatusError) HTTPStatus() int { return e.Status }

// StatusOf returns the upstream status carried by err, if any
func StatusOf(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

// IsAuthRejected reports whether the tenant refused the credentials
func IsAuthRejected(err error) bool {
	s, ok := StatusOf(err)
	return ok && (s == http.StatusUnauthorized || s == http.StatusForbidden)
}
