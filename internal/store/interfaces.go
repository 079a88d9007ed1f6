package store

import (
	"context"

	"github.com/paveldk/go-blog-api/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists and retrieves blog posts. Read methods populate
// the Author summary from the users table; mutation methods return the
// canonical database representation of the affected row.
type PostRepository interface {
	Create(ctx context.Context, post models.Post) (models.Post, error)
	FindByID(ctx context.Context, postID int64) (models.Post, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, postID int64, title, content *string) (models.Post, error)
	SetPublished(ctx context.Context, postID int64, published bool) (models.Post, error)
	Delete(ctx context.Context, postID int64) error
}

// CommentRepository persists and retrieves comments attached to posts.
type CommentRepository interface {
	Create(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindByID(ctx context.Context, commentID int64) (models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Update(ctx context.Context, commentID int64, content string) (models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

// ErrorClassificator reports whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
