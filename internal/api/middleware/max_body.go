package middleware

import (
	"net/http"

	"github.com/clauselens/clauselens/internal/api"
)

// MaxBodyBytes caps the request body size. Contract documents travel inline
// in the JSON body, so this is the first gate against oversized uploads. A
// non-positive limit disables the check.
func MaxBodyBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			// Reject early when the declared length already exceeds the
			// limit; MaxBytesReader covers chunked bodies.
			if r.ContentLength > limit {
				api.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
