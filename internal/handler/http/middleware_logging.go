package http

import (
	"net/http"
	"time"

	"github.com/paveldk/go-blog-api/internal/logger"
)

// withLogging emits one structured line per request: method, URI, status,
// payload size, and wall-clock duration. It reads the trace-scoped logger
// placed into the context by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(recorder, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", recorder.status).
			Int("size", recorder.size).
			Dur("duration", time.Since(started)).
			Msg("request handled")
	})
}
