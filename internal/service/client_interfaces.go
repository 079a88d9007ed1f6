package service

import (
	"context"

	"github.com/paveldk/go-blog-api/models"
)

// ClientAuthService defines the client-side contract for account registration
// and authentication against the remote blog server.
type ClientAuthService interface {
	// Register creates a new account on the server. Role may be empty, in
	// which case the server assigns USER. Registration does not log the
	// account in.
	Register(ctx context.Context, username, email, password string, role models.Role) (models.UserInfo, error)

	// Login authenticates against the server and stores the session. After a
	// successful login the underlying adapter holds the bearer token and
	// CurrentUser reports the authenticated account.
	Login(ctx context.Context, email, password string) (models.UserInfo, error)

	// CurrentUser returns the authenticated account and true, or a zero
	// value and false when nobody is logged in.
	CurrentUser() (models.UserInfo, bool)

	// Logout drops the stored session and clears the adapter's bearer token.
	Logout()
}

// ClientBlogService defines the client-side contract for reading and writing
// posts and comments. Mutating operations require a prior Login; the server
// enforces role and ownership rules and the errors come back as the service
// sentinels (ErrNotOwner, ErrInsufficientRole, store.ErrPostNotFound, ...).
type ClientBlogService interface {
	// Feed fetches the public feed: published posts, newest first.
	Feed(ctx context.Context) ([]models.Post, error)

	// GetPost fetches a single post by ID, drafts included.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// CreateDraft creates a new unpublished post owned by the logged-in
	// AUTHOR. Both title and content are required.
	CreateDraft(ctx context.Context, title, content string) (models.Post, error)

	// EditPost changes a post's title and/or content. Empty strings keep the
	// current value; at least one field must be non-empty. The server forces
	// the post back to draft.
	EditPost(ctx context.Context, postID int64, title, content string) (models.Post, error)

	// TogglePublish flips a post between draft and published.
	TogglePublish(ctx context.Context, postID int64) (models.Post, error)

	// DeletePost removes a post and all of its comments.
	DeletePost(ctx context.Context, postID int64) error

	// ListComments fetches a post's comments, oldest first.
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)

	// GetComment fetches a single comment by ID.
	GetComment(ctx context.Context, commentID int64) (models.Comment, error)

	// AddComment attaches a comment to a post. Content is required.
	AddComment(ctx context.Context, postID int64, content string) (models.Comment, error)

	// EditComment replaces a comment's content. Content is required.
	EditComment(ctx context.Context, commentID int64, content string) (models.Comment, error)

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID int64) error
}
