package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Logging wraps next with a request logger, mirroring the teacher's
// gorilla/mux logging middleware but emitting structured zap fields
// instead of a formatted string.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
