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

func newCommentsRouter(comments *mockCommentService) http.Handler {
	auth := &mockAuthService{parseTokenFn: knownTokens}
	return newTestHandler(auth, nil, comments).Init()
}

func TestListComments_Public(t *testing.T) {
	comments := &mockCommentService{
		listByPostFn: func(_ context.Context, postID int64) ([]models.Comment, error) {
			assert.Equal(t, int64(5), postID)
			return []models.Comment{
				{ID: 1, Content: "first", PostID: postID, Author: &models.UserSummary{ID: 2, Username: "bob"}},
				{ID: 2, Content: "second", PostID: postID, Author: &models.UserSummary{ID: 3, Username: "alice"}},
			}, nil
		},
	}
	router := newCommentsRouter(comments)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/5/comments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var thread []models.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &thread))
	require.Len(t, thread, 2)
	assert.Equal(t, "first", thread[0].Content, "oldest comment first")
}

func TestListComments_PostNotFound(t *testing.T) {
	comments := &mockCommentService{
		listByPostFn: func(_ context.Context, _ int64) ([]models.Comment, error) {
			return nil, store.ErrPostNotFound
		},
	}
	router := newCommentsRouter(comments)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/404/comments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateComment_RequiresToken(t *testing.T) {
	router := newCommentsRouter(&mockCommentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/posts/5/comments", strings.NewReader(`{"content":"hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateComment_PlainUserAllowed(t *testing.T) {
	comments := &mockCommentService{
		createFn: func(_ context.Context, authorID, postID int64, request models.CommentCreateRequest) (models.Comment, error) {
			assert.Equal(t, int64(7), authorID, "author ID must come from the token")
			return models.Comment{ID: 1, Content: request.Content, PostID: postID, AuthorID: authorID}, nil
		},
	}
	router := newCommentsRouter(comments)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/5/comments", strings.NewReader(`{"content":"Nice post"}`))
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.AuthorID)
}

func TestCreateComment_MissingPost(t *testing.T) {
	comments := &mockCommentService{
		createFn: func(_ context.Context, _, _ int64, _ models.CommentCreateRequest) (models.Comment, error) {
			return models.Comment{}, store.ErrPostNotFound
		},
	}
	router := newCommentsRouter(comments)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/404/comments", strings.NewReader(`{"content":"hi"}`))
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateComment_NotOwnerForbidden(t *testing.T) {
	comments := &mockCommentService{
		updateFn: func(_ context.Context, _, _ int64, _ string) (models.Comment, error) {
			return models.Comment{}, service.ErrNotOwner
		},
	}
	router := newCommentsRouter(comments)

	req := httptest.NewRequest(http.MethodPut, "/api/comments/1", strings.NewReader(`{"content":"edited"}`))
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteComment_Success(t *testing.T) {
	comments := &mockCommentService{
		deleteFn: func(_ context.Context, requesterID, commentID int64) error {
			assert.Equal(t, int64(7), requesterID)
			assert.Equal(t, int64(1), commentID)
			return nil
		},
	}
	router := newCommentsRouter(comments)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/1", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "comment deleted successfully", response.Message)
}
