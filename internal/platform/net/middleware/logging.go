package middleware

import (
	"net/http"

	"c4ctexts/internal/platform/logger"
	pnet "c4ctexts/internal/platform/net"
)

// LogContext copies the chi request id onto the logger context so logger.C(ctx)
// tags every line written while serving the request. Must run after RequestID
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := pnet.RequestID(r.Context())
		if reqID == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := logger.WithRequest(r.Context(), reqID, "")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
