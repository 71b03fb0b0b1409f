package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"c4ctexts/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins empty reflects any origin
	CORSOrigins []string
	// RequestTimeout 0 leaves requests unbounded
	RequestTimeout time.Duration
	// SlowRequest marks access log lines at warn level, 0 disables
	SlowRequest time.Duration
}

// CommonStack returns the baseline middleware slice mounted at the root router
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.LogContext,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		// safety
		middleware.RecoverJSON,

		// cross-origin answers preflights before anything else runs
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),

		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.RequestTimeout),
	}
}

// JSONOnly rejects request bodies that are not application/json with 415
func JSONOnly() func(http.Handler) http.Handler {
	return middleware.AllowContentType("application/json")
}
