package auth

import (
	"net/http"
	"strings"

	"github.com/tair/inventory-tracker/pkg/logger"
)

// OptionalAuthMiddleware attaches the token's username to the request context when a valid bearer
// token is present. Requests without one, or with an invalid one, continue anonymously.
func OptionalAuthMiddleware(v *TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v == nil {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Validate(parts[1])
			if err != nil {
				logger.Debug(r.Context()).Err(err).Msg("Ignoring invalid bearer token")
				next.ServeHTTP(w, r)
				return
			}

			logger.Debug(r.Context()).
				Str("user_id", claims.UserID).
				Str("username", claims.Username).
				Msg("Optional auth: user identified")

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), claims.Username)))
		})
	}
}
