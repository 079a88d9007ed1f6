package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/utils"
)

// auth guards every route mounted behind it with JWT authentication.
//
// It pulls the bearer token out of the "Authorization" header, validates it
// through [service.AuthService.ParseToken], and stores the caller's user ID
// and role in the request context under [utils.UserIDCtxKey] and
// [utils.UserRoleCtxKey]. A missing or unparseable header and an expired,
// malformed, or wrong-issuer token all end the request with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("rejecting request with bad token")
			writeError(w, err)
			return
		}

		// Downstream handlers read the identity from the context instead of
		// re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UserRoleCtxKey, token.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader splits a raw "Authorization: Bearer <token>"
// header value and returns the token part. It reports
// [ErrInvalidAuthorizationHeader] when the token part is missing or the
// scheme is not Bearer (compared case-insensitively, per RFC 7235), and
// [ErrEmptyToken] when the token is present but empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
