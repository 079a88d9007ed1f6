package http

import (
	"net/http"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/utils"
	"github.com/paveldk/go-blog-api/models"
)

// requireRole builds a middleware that admits only requests whose
// authenticated role is one of the allowed values. It must sit behind the
// auth middleware; a request with no identity in the context gets 401, a
// request with the wrong role gets 403.
//
// The check is coarse (role only): whether the requester owns the specific
// resource is decided by the service layer after loading it.
func (h *Handler) requireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			role, ok := utils.GetUserRoleFromContext(r.Context())
			if !ok {
				log.Error().Msg("role check reached without authenticated identity")
				utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if !role.OneOf(allowed...) {
				log.Error().Str("role", string(role)).Msg("insufficient role for route")
				utils.WriteJSONError(w, "insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
