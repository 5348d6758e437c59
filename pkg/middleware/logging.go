package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs every HTTP request with its status, duration and the
// acting user.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		user := GetUser(r.Context())
		logFn := slog.Info
		if ww.Status() >= 500 {
			logFn = slog.Error
		} else if ww.Status() >= 400 {
			logFn = slog.Warn
		}
		logFn("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"user", user.Name,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
