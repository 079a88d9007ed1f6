package http

import (
	"context"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/service"
	"github.com/paveldk/go-blog-api/models"
)

// Hand-rolled fn-field mocks for the service interfaces, so each test wires
// only the calls it cares about.

type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockPostService struct {
	createFn        func(ctx context.Context, authorID int64, request models.PostCreateRequest) (models.Post, error)
	getFn           func(ctx context.Context, postID int64) (models.Post, error)
	listPublishedFn func(ctx context.Context) ([]models.Post, error)
	updateFn        func(ctx context.Context, requesterID, postID int64, request models.PostUpdateRequest) (models.Post, error)
	togglePublishFn func(ctx context.Context, requesterID, postID int64) (models.Post, error)
	deleteFn        func(ctx context.Context, requesterID, postID int64) error
}

func (m *mockPostService) Create(ctx context.Context, authorID int64, request models.PostCreateRequest) (models.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, authorID, request)
	}
	return models.Post{}, nil
}

func (m *mockPostService) Get(ctx context.Context, postID int64) (models.Post, error) {
	if m.getFn != nil {
		return m.getFn(ctx, postID)
	}
	return models.Post{}, nil
}

func (m *mockPostService) ListPublished(ctx context.Context) ([]models.Post, error) {
	if m.listPublishedFn != nil {
		return m.listPublishedFn(ctx)
	}
	return nil, nil
}

func (m *mockPostService) Update(ctx context.Context, requesterID, postID int64, request models.PostUpdateRequest) (models.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, requesterID, postID, request)
	}
	return models.Post{}, nil
}

func (m *mockPostService) TogglePublish(ctx context.Context, requesterID, postID int64) (models.Post, error) {
	if m.togglePublishFn != nil {
		return m.togglePublishFn(ctx, requesterID, postID)
	}
	return models.Post{}, nil
}

func (m *mockPostService) Delete(ctx context.Context, requesterID, postID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, requesterID, postID)
	}
	return nil
}

type mockCommentService struct {
	createFn     func(ctx context.Context, authorID, postID int64, request models.CommentCreateRequest) (models.Comment, error)
	getFn        func(ctx context.Context, commentID int64) (models.Comment, error)
	listByPostFn func(ctx context.Context, postID int64) ([]models.Comment, error)
	updateFn     func(ctx context.Context, requesterID, commentID int64, content string) (models.Comment, error)
	deleteFn     func(ctx context.Context, requesterID, commentID int64) error
}

func (m *mockCommentService) Create(ctx context.Context, authorID, postID int64, request models.CommentCreateRequest) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, authorID, postID, request)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) Get(ctx context.Context, commentID int64) (models.Comment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, commentID)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentService) Update(ctx context.Context, requesterID, commentID int64, content string) (models.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, requesterID, commentID, content)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) Delete(ctx context.Context, requesterID, commentID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, requesterID, commentID)
	}
	return nil
}

// newTestHandler wires a Handler over the given mocks; nil mocks are
// replaced with empty ones.
func newTestHandler(auth *mockAuthService, posts *mockPostService, comments *mockCommentService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if posts == nil {
		posts = &mockPostService{}
	}
	if comments == nil {
		comments = &mockCommentService{}
	}

	return NewHandler(&service.Services{
		AuthService:    auth,
		PostService:    posts,
		CommentService: comments,
	}, logger.Nop())
}

// knownTokens is a ParseToken implementation recognising two fixed bearer
// tokens: one AUTHOR (user 3) and one plain USER (user 7).
func knownTokens(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case "author-token":
		return models.Token{UserID: 3, Role: models.RoleAuthor}, nil
	case "user-token":
		return models.Token{UserID: 7, Role: models.RoleUser}, nil
	default:
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
}
