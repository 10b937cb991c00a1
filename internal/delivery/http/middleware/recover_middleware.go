package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"storefront-backend/pkg/apperror"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"
)

// Recoverer turns a panic into a 500 with the generic error body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.WithContext(r.Context()).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")
			utils.WriteAppError(w, r, apperror.NewInternal(fmt.Errorf("panic: %v", rec)))
		}()
		next.ServeHTTP(w, r)
	})
}
