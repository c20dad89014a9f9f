package middleware

import (
	"net/http"
	"time"

	"contact-service/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs one line per request once it has been served.
func LoggingMiddleware(logger *logrus.Entry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			entry := logger.WithFields(logrus.Fields{
				"request_id":  RequestIDFromContext(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"bytes":       rec.bytes,
				"remote_ip":   utils.ClientIP(r, false),
				"duration_ms": time.Since(start).Milliseconds(),
			})
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				entry = entry.WithField("forwarded_for", xff)
			}
			switch {
			case rec.status >= 500:
				entry.Error("Request completed")
			case rec.status >= 400:
				entry.Warn("Request completed")
			default:
				entry.Info("Request completed")
			}
		})
	}
}
