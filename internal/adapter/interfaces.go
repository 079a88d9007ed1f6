// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer the terminal client uses to
// talk to the blog server.
//
// The primary abstraction is [BlogClient], which decouples the TUI from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewBlogHTTPAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/paveldk/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blog_client_mock.go -package=mock

// BlogClient defines transport-agnostic communication with the blog server.
// Implementations are responsible for serialisation, bearer-token header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BlogClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns the server's view of it.
	Register(ctx context.Context, request models.RegisterRequest) (models.UserInfo, error)

	// Login authenticates and, on success, stores the returned token via
	// SetToken and returns the logged-in user's public info.
	Login(ctx context.Context, request models.LoginRequest) (models.UserInfo, error)

	// ListPosts fetches the public feed: published posts, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost fetches a single post by ID, drafts included.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// CreatePost creates a new draft post. Requires an AUTHOR token.
	CreatePost(ctx context.Context, request models.PostCreateRequest) (models.Post, error)

	// UpdatePost edits a post's title and/or content. The server forces the
	// post back to draft state. Requires the owning AUTHOR's token.
	UpdatePost(ctx context.Context, postID int64, request models.PostUpdateRequest) (models.Post, error)

	// TogglePublish flips a post between draft and published. Requires the
	// owning AUTHOR's token.
	TogglePublish(ctx context.Context, postID int64) (models.Post, error)

	// DeletePost removes a post and its comments. Requires the owning
	// AUTHOR's token.
	DeletePost(ctx context.Context, postID int64) error

	// ListComments fetches a post's comments, oldest first.
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)

	// GetComment fetches a single comment by ID.
	GetComment(ctx context.Context, commentID int64) (models.Comment, error)

	// CreateComment attaches a comment to a post. Requires any valid token.
	CreateComment(ctx context.Context, postID int64, request models.CommentCreateRequest) (models.Comment, error)

	// UpdateComment replaces a comment's content. Requires the owner's token.
	UpdateComment(ctx context.Context, commentID int64, request models.CommentCreateRequest) (models.Comment, error)

	// DeleteComment removes a comment. Requires the owner's token.
	DeleteComment(ctx context.Context, commentID int64) error
}
