package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/meenakannan/portfolio-api/internal/api/httpx"
)

// Recover turns panics into 500 envelopes. Outside prod the envelope
// carries the stack trace; in prod it stays generic.
func Recover(appEnv string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic", "err", rec, "path", r.URL.Path)
					env := httpx.Envelope{Status: "error", Message: "Internal server error"}
					if appEnv != "prod" {
						env.Message = fmt.Sprint(rec)
						env.Stack = string(debug.Stack())
					}
					httpx.WriteJSON(w, http.StatusInternalServerError, env)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
