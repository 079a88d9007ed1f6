package http

import (
	"errors"
	"net/http"

	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/internal/utils"
)

// errorStatusMap translates domain sentinel errors into HTTP status codes.
// Duplicate email intentionally maps to 400, not 409: the registration
// contract reports it as a plain validation failure.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrPostNotFound:       http.StatusNotFound,
	store.ErrCommentNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds client-facing messages for mapped errors. Server-side
// failures deliberately fall back to a generic message so internals never
// leak through the error body.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     "invalid data provided",
	service.ErrInvalidCredentials:      "invalid email or password",
	service.ErrTokenIsExpiredOrInvalid: "token is expired or invalid",
	service.ErrNotOwner:                "you are not the owner of this resource",

	store.ErrEmailAlreadyExists: "email already in use",
	store.ErrUserNotFound:       "user not found",
	store.ErrPostNotFound:       "post not found",
	store.ErrCommentNotFound:    "comment not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "internal server error"
}

// writeError renders err as the uniform `{"error": ...}` body with the
// status code derived from the sentinel it wraps.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
}
