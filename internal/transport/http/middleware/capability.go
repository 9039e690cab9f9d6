package middleware

import (
	"net/http"

	"paydesk/internal/domain/auth"
	"paydesk/internal/transport/http/api"
)

// RequireCapability guards a route with the static (role, operation)
// table. Services run the same check again before mutating, so a
// mis-wired route cannot widen access.
func RequireCapability(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if !auth.Allowed(identity.Role, operation) {
				api.Fail(w, http.StatusForbidden, "permission_denied", "insufficient permissions", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
