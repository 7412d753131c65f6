package middlewares

import (
	"fmt"
	"net/http"

	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
)

// ErrorHandler recovers panics from downstream handlers so a single
// bad request cannot take the server down.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
