package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/minjipark/tteokbang-backend/api/responses"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/logger"
)

// Recoverer turns handler panics into INTERNAL_ERROR responses, logging the
// stack for the on-call trail.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// net/http's sentinel for aborting the response; not ours to handle.
					panic(rec)
				}

				err := fmt.Errorf("panic: %v", rec)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic": fmt.Sprint(rec),
						"stack": string(debug.Stack()),
					})
					logg.Error(ctx, "panic.recovered", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unhandled panic"))
			}()
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
