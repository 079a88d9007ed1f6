package service

import (
	"context"

	"github.com/paveldk/go-blog-api/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService implements the post lifecycle: drafts, edits, publishing, and
// the public feed. Mutations verify that the requester owns the post before
// touching it; a missing post is always reported before an ownership failure.
type PostService interface {
	Create(ctx context.Context, authorID int64, request models.PostCreateRequest) (models.Post, error)
	Get(ctx context.Context, postID int64) (models.Post, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, requesterID, postID int64, request models.PostUpdateRequest) (models.Post, error)
	TogglePublish(ctx context.Context, requesterID, postID int64) (models.Post, error)
	Delete(ctx context.Context, requesterID, postID int64) error
}

// CommentService implements commenting on posts. Mutations verify that the
// requester owns the comment; creation and listing verify that the target
// post exists.
type CommentService interface {
	Create(ctx context.Context, authorID, postID int64, request models.CommentCreateRequest) (models.Comment, error)
	Get(ctx context.Context, commentID int64) (models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Update(ctx context.Context, requesterID, commentID int64, content string) (models.Comment, error)
	Delete(ctx context.Context, requesterID, commentID int64) error
}
