// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/models"
)

// newPostsRouter wires a router whose auth middleware recognises the two
// fixed test tokens.
func newPostsRouter(posts *mockPostService) http.Handler {
	auth := &mockAuthService{parseTokenFn: knownTokens}
	return newTestHandler(auth, posts, nil).Init()
}

func TestListPosts_Public(t *testing.T) {
	posts := &mockPostService{
		listPublishedFn: func(_ context.Context) ([]models.Post, error) {
			return []models.Post{
				{ID: 2, Title: "Newer", Published: true, Author: &models.UserSummary{ID: 1, Username: "alice"}},
				{ID: 1, Title: "Older", Published: true, Author: &models.UserSummary{ID: 2, Username: "bob"}},
			}, nil
		},
	}
	router := newPostsRouter(posts)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var feed []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 2)
	assert.Equal(t, "Newer", feed[0].Title)
	assert.Equal(t, "alice", feed[0].Author.Username)
}

func TestGetPost_NotFound(t *testing.T) {
	posts := &mockPostService{
		getFn: func(_ context.Context, _ int64) (models.Post, error) {
			return models.Post{}, store.ErrPostNotFound
		},
	}
	router := newPostsRouter(posts)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "post not found", response.Error)
}

func TestGetPost_NonNumericID(t *testing.T) {
	router := newPostsRouter(&mockPostService{})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePost_RequiresToken(t *testing.T) {
	router := newPostsRouter(&mockPostService{})

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"title":"t","content":"c"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePost_UserRoleForbidden(t *testing.T) {
	router := newPostsRouter(&mockPostService{})

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"title":"t","content":"c"}`))
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreatePost_AuthorSuccess(t *testing.T) {
	posts := &mockPostService{
		createFn: func(_ context.Context, authorID int64, request models.PostCreateRequest) (models.Post, error) {
			assert.Equal(t, int64(3), authorID, "author ID must come from the token")
			return models.Post{ID: 1, Title: request.Title, Content: request.Content, AuthorID: authorID}, nil
		},
	}
	router := newPostsRouter(posts)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"title":"First","content":"Hello"}`))
	req.Header.Set("Authorization", "Bearer author-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.Published)
}

func TestUpdatePost_NotOwnerForbidden(t *testing.T) {
	posts := &mockPostService{
		updateFn: func(_ context.Context, requesterID, postID int64, _ models.PostUpdateRequest) (models.Post, error) {
			return models.Post{}, service.ErrNotOwner
		},
	}
	router := newPostsRouter(posts)

	req := httptest.NewRequest(http.MethodPut, "/api/posts/5", strings.NewReader(`{"title":"stolen"}`))
	req.Header.Set("Authorization", "Bearer author-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTogglePublish_MessageReflectsState(t *testing.T) {
	posts := &mockPostService{
		togglePublishFn: func(_ context.Context, requesterID, postID int64) (models.Post, error) {
			return models.Post{ID: postID, AuthorID: requesterID, Published: true}, nil
		},
	}
	router := newPostsRouter(posts)

	req := httptest.NewRequest(http.MethodPatch, "/api/posts/5/publish", nil)
	req.Header.Set("Authorization", "Bearer author-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.PublishResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "post published successfully", response.Message)
	assert.True(t, response.Post.Published)
}

func TestDeletePost_Success(t *testing.T) {
	posts := &mockPostService{
		deleteFn: func(_ context.Context, requesterID, postID int64) error {
			assert.Equal(t, int64(3), requesterID)
			assert.Equal(t, int64(5), postID)
			return nil
		},
	}
	router := newPostsRouter(posts)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/5", nil)
	req.Header.Set("Authorization", "Bearer author-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "post deleted successfully", response.Message)
}
