// Package utils holds the small cross-cutting helpers of the application:
// context keys, password hashing, JWT generation and validation, and HTTP
// response writing.
package utils

import (
	"context"

	"github.com/paveldk/go-blog-api/models"
)

// contextKey keeps our context values from colliding with string keys set
// by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user identifier in the request
// context. Set by the auth middleware, read by handlers.
var UserIDCtxKey = contextKey("userID")

// UserRoleCtxKey stores the authenticated user's role in the request
// context. Set by the auth middleware, read by the role gate.
var UserRoleCtxKey = contextKey("userRole")

// GetUserIDFromContext returns the caller's user ID and whether the context
// actually carried one of the right type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserRoleFromContext returns the caller's role, with the same ok-flag
// semantics as GetUserIDFromContext.
func GetUserRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(UserRoleCtxKey).(models.Role)
	return role, ok
}
