package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paveldk/go-blog-api/internal/utils"
	"github.com/paveldk/go-blog-api/models"
)

func assertIdentityHandler(t *testing.T, wantID int64, wantRole models.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok, "user ID must be in context")
		assert.Equal(t, wantID, userID)

		role, ok := utils.GetUserRoleFromContext(r.Context())
		require.True(t, ok, "role must be in context")
		assert.Equal(t, wantRole, role)

		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(&mockAuthService{parseTokenFn: knownTokens}, nil, nil)
	next := h.auth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(&mockAuthService{parseTokenFn: knownTokens}, nil, nil)
	next := h.auth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	}))

	for _, header := range []string{"Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		next.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q must be rejected", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	h := newTestHandler(&mockAuthService{parseTokenFn: knownTokens}, nil, nil)
	next := h.auth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenPopulatesContext(t *testing.T) {
	h := newTestHandler(&mockAuthService{parseTokenFn: knownTokens}, nil, nil)
	next := h.auth(assertIdentityHandler(t, 3, models.RoleAuthor))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer author-token")
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// scheme matching is case-insensitive per RFC 7235
	token, err = getTokenFromAuthHeader("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	require.ErrorIs(t, err, ErrEmptyToken)
}

func TestGetTokenFromAuthHeader_RejectsOtherSchemes(t *testing.T) {
	for _, header := range []string{"Basic abc.def.ghi", "Token abc.def.ghi", "abc.def.ghi extra"} {
		_, err := getTokenFromAuthHeader(header)
		require.ErrorIs(t, err, ErrInvalidAuthorizationHeader, "header %q must be rejected", header)
	}
}
