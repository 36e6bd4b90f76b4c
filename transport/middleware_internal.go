package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/utils/errors"
)

// InternalMiddleware checks for static API key in header.
// An empty key disables the internal routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if apiKey == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
