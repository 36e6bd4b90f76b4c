package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/classifieds/application/auth"
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
	utilsContext "github.com/muhammadheryan/classifieds/utils/context"
	"github.com/muhammadheryan/classifieds/utils/errors"
)

// AuthMiddleware resolves the request principal from Basic credentials or a
// bearer token. Public routes and the swagger/internal trees pass through.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := resolvePrincipal(r, authApp)
			if err != nil {
				if errors.Is(err, constant.ErrInternal) {
					writeError(w, err)
					return
				}
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolvePrincipal(r *http.Request, authApp auth.AuthApp) (*model.Principal, error) {
	if token, ok := bearerToken(r); ok {
		return authApp.ValidateToken(r.Context(), token)
	}
	if username, password, ok := r.BasicAuth(); ok {
		return authApp.Authenticate(r.Context(), username, password)
	}
	return nil, errors.SetCustomError(constant.ErrUnauthorize)
}

// isPublicRoute defines which endpoints are public (no auth required)
func isPublicRoute(r *http.Request) bool {
	path := r.URL.Path
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if route := mux.CurrentRoute(r); route != nil {
		return strings.HasPrefix(route.GetName(), publicRoutePrefix)
	}
	return false
}
