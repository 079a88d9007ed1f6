package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/paveldk/go-blog-api/internal/adapter"
	"github.com/paveldk/go-blog-api/internal/mock"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/models"
)

func newTestClientBlogSvc(t *testing.T, ctrl *gomock.Controller) (*clientBlogService, *mock.MockBlogClient) {
	t.Helper()
	mockClient := mock.NewMockBlogClient(ctrl)
	svc := NewClientBlogService(mockClient).(*clientBlogService)
	return svc, mockClient
}

// ── Feed / GetPost ──────────────────────────────────────────────────────────

func TestClientBlogService_Feed_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().ListPosts(ctx).Return([]models.Post{
		{ID: 2, Title: "second", Published: true},
		{ID: 1, Title: "first", Published: true},
	}, nil)

	posts, err := svc.Feed(ctx)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(2), posts[0].ID)
}

func TestClientBlogService_Feed_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	transportErr := errors.New("connection refused")
	mockClient.EXPECT().ListPosts(ctx).Return(nil, transportErr)

	_, err := svc.Feed(ctx)

	// unmapped transport errors pass through untouched
	assert.ErrorIs(t, err, transportErr)
}

func TestClientBlogService_GetPost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().GetPost(ctx, int64(99)).
		Return(models.Post{}, adapterErr(adapter.ErrNotFound, "post not found"))

	_, err := svc.GetPost(ctx, 99)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

// ── Post mutations ──────────────────────────────────────────────────────────

func TestClientBlogService_CreateDraft_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().CreatePost(ctx, models.PostCreateRequest{Title: "draft", Content: "body"}).
		Return(models.Post{ID: 5, Title: "draft", Content: "body", Published: false}, nil)

	post, err := svc.CreateDraft(ctx, " draft ", " body ")

	require.NoError(t, err)
	assert.Equal(t, int64(5), post.ID)
	assert.False(t, post.Published)
}

func TestClientBlogService_CreateDraft_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateDraft(ctx, "", "body")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateDraft(ctx, "title", "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientBlogService_CreateDraft_InsufficientRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().CreatePost(ctx, gomock.Any()).
		Return(models.Post{}, adapterErr(adapter.ErrForbidden, "insufficient role"))

	_, err := svc.CreateDraft(ctx, "draft", "body")
	assert.ErrorIs(t, err, ErrInsufficientRole)
}

func TestClientBlogService_EditPost_BothFieldsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientBlogSvc(t, ctrl)

	_, err := svc.EditPost(context.Background(), 5, "  ", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientBlogService_EditPost_BlankFieldsOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	// a blank content field must be sent as nil so the server keeps the
	// current value instead of overwriting it with ""
	mockClient.EXPECT().UpdatePost(ctx, int64(5), models.PostUpdateRequest{Title: strPtr("edited")}).
		Return(models.Post{ID: 5, Title: "edited", Content: "kept"}, nil)

	post, err := svc.EditPost(ctx, 5, " edited ", "")

	require.NoError(t, err)
	assert.Equal(t, "kept", post.Content)
}

func TestClientBlogService_EditPost_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().UpdatePost(ctx, int64(5), models.PostUpdateRequest{Title: strPtr("edited")}).
		Return(models.Post{}, adapterErr(adapter.ErrForbidden, "you are not the owner of this resource"))

	_, err := svc.EditPost(ctx, 5, "edited", "")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestClientBlogService_TogglePublish_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().TogglePublish(ctx, int64(5)).
		Return(models.Post{ID: 5, Published: true}, nil)

	post, err := svc.TogglePublish(ctx, 5)

	require.NoError(t, err)
	assert.True(t, post.Published)
}

func TestClientBlogService_DeletePost_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().DeletePost(ctx, int64(5)).
		Return(adapterErr(adapter.ErrUnauthorized, "token is expired or invalid"))

	err := svc.DeletePost(ctx, 5)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Comments ────────────────────────────────────────────────────────────────

func TestClientBlogService_ListComments_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().ListComments(ctx, int64(5)).Return([]models.Comment{
		{ID: 1, Content: "first"},
		{ID: 2, Content: "second"},
	}, nil)

	comments, err := svc.ListComments(ctx, 5)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(1), comments[0].ID)
}

func TestClientBlogService_AddComment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().CreateComment(ctx, int64(5), models.CommentCreateRequest{Content: "nice"}).
		Return(models.Comment{ID: 9, PostID: 5, Content: "nice"}, nil)

	comment, err := svc.AddComment(ctx, 5, "nice")

	require.NoError(t, err)
	assert.Equal(t, int64(9), comment.ID)
}

func TestClientBlogService_AddComment_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientBlogSvc(t, ctrl)

	_, err := svc.AddComment(context.Background(), 5, "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientBlogService_AddComment_PostGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().CreateComment(ctx, int64(99), gomock.Any()).
		Return(models.Comment{}, adapterErr(adapter.ErrNotFound, "post not found"))

	_, err := svc.AddComment(ctx, 99, "nice")
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestClientBlogService_EditComment_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().UpdateComment(ctx, int64(9), models.CommentCreateRequest{Content: "edited"}).
		Return(models.Comment{}, adapterErr(adapter.ErrForbidden, "you are not the owner of this resource"))

	_, err := svc.EditComment(ctx, 9, "edited")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestClientBlogService_DeleteComment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockClient := newTestClientBlogSvc(t, ctrl)
	ctx := context.Background()

	mockClient.EXPECT().DeleteComment(ctx, int64(9)).
		Return(adapterErr(adapter.ErrNotFound, "comment not found"))

	err := svc.DeleteComment(ctx, 9)
	assert.ErrorIs(t, err, store.ErrCommentNotFound)
}
