package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// requireRole is an HTTP middleware that gates a route group behind a role.
// It must run after the auth middleware, which is responsible for placing the
// authenticated user's role in the request context.
//
// Requests whose context carries no role are rejected with 401; requests with
// a different role are rejected with 403.
func (h *Handler) requireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			callerRole, ok := utils.GetUserRoleFromContext(r.Context())
			if !ok {
				log.Error().Msg("no role in request context")
				utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if callerRole != role {
				log.Warn().
					Str("required", role).
					Str("actual", callerRole).
					Msg("insufficient role")
				utils.WriteJSONError(w, ErrInsufficientRole.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
