package httpkit

import (
	"net/http"

	str "c4ctexts/internal/platform/strings"
)

// MountUnder mounts a module's routes below prefix with its middleware applied first
// prefix is normalized to a single leading slash; an empty prefix panics
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(str.MustPrefix(prefix), func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		if mount != nil {
			mount(sub)
		}
	})
}
