package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof and expvar under prefix (e.g. "/debug") when enabled
// the chi profiler routes from its own root, so the prefix is stripped before it sees the path
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) { h.ServeHTTP(w, req) }
	for _, p := range []string{prefix, prefix + "/*"} {
		r.Get(p, serve)
	}
}
