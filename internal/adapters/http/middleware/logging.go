package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/property-manager/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID from context, stores
// it via logging.WithLogger so services and the backend requester log under
// the same ID, and logs completion with method, path, status code, and
// duration. Server errors are logged at error level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("remote_addr", r.RemoteAddr),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", attrArgs(RedactHeaders(r.Header))...)
				if query := r.URL.Query(); len(query) > 0 {
					child.DebugContext(ctx, "request query", attrArgs(RedactQuery(query))...)
				}
			}

			rw := recordResponse(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.Status()),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func attrArgs(attrs []slog.Attr) []any {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return args
}

// responseRecorder remembers the status and body size a handler sent. One
// recorder is shared by Recovery, OpenTelemetry and Logging: wrapping an
// existing recorder returns it unchanged.
type responseRecorder struct {
	http.ResponseWriter
	status int // 0 until the first WriteHeader or Write
	bytes  int64
}

func recordResponse(w http.ResponseWriter) *responseRecorder {
	if rr, ok := w.(*responseRecorder); ok {
		return rr
	}
	return &responseRecorder{ResponseWriter: w}
}

// WriteHeader forwards the first status only.
func (rr *responseRecorder) WriteHeader(code int) {
	if rr.committed() {
		return
	}
	rr.status = code
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	if !rr.committed() {
		rr.status = http.StatusOK
	}
	n, err := rr.ResponseWriter.Write(b)
	rr.bytes += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rr *responseRecorder) Unwrap() http.ResponseWriter {
	return rr.ResponseWriter
}

// Status is the status sent so far; a handler that wrote nothing gets 200
// from net/http.
func (rr *responseRecorder) Status() int {
	if rr.status == 0 {
		return http.StatusOK
	}
	return rr.status
}

func (rr *responseRecorder) committed() bool {
	return rr.status != 0
}
