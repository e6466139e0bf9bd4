package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/property-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/property-manager/internal/domain"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// The panic value and stack are logged; the client receives the generic
// UNKNOWN_ERROR problem body with status 500, never the panic value. If the
// response headers have already been written, only the log entry is emitted.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := recordResponse(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				// Recovery runs outside RequestID, so the ID is read back from
				// the response header it set.
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.committed() {
					dto.WriteErrorResponse(rw, r, domain.UnknownError())
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
