package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/focusnest/docker-server/internal/logging"
)

// RequestLogger logs one line per request with the final status, response size and duration.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// Handlers that only call Write never set a status explicitly.
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logging.WithRequestID(r.Context(), logger, middleware.GetReqID(r.Context())).Info("request served",
				slog.String("method", r.Method),
				slog.String("path", r.URL.RequestURI()),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Int64("durMs", time.Since(start).Milliseconds()),
			)
		})
	}
}
