// Package observability provides request logging, metrics and tracing
// middleware for the web service.
package observability

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/socialcrm/internal/services/web/platform/httpx"
)

// RequestLogger writes one key=value line per request.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := httpx.NewResponseRecorder(w)
			next.ServeHTTP(recorder, r)
			logger.Printf(
				"request method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method,
				r.URL.Path,
				recorder.Status(),
				recorder.Bytes(),
				time.Since(start).Round(time.Microsecond),
				httpx.RequestIDFrom(r),
			)
		})
	}
}
