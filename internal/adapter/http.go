package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/paveldk/go-blog-api/internal/config"
	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/utils"
	"github.com/paveldk/go-blog-api/models"
)

type blogHTTPAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewBlogHTTPAdapter constructs an HTTP/REST implementation of [BlogClient].
// It normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewBlogHTTPAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BlogClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server base URL: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &blogHTTPAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BlogClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (b *blogHTTPAdapter) SetToken(token string) {
	b.token = strings.TrimSpace(token)
}

// Token implements [BlogClient]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (b *blogHTTPAdapter) Token() string {
	return b.token
}

// Register implements [BlogClient]. It POSTs the account details to
// POST /api/auth/register and returns the created user's public info.
// Registration does not log the user in; call Login afterwards.
func (b *blogHTTPAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.UserInfo, error) {
	var body models.RegisterResponse

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&body).
		Post("/api/auth/register")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	return body.User, nil
}

// Login implements [BlogClient]. It POSTs the credentials to
// POST /api/auth/login. On success the token from the response body is
// stored via SetToken and the logged-in user's public info is returned.
func (b *blogHTTPAdapter) Login(ctx context.Context, request models.LoginRequest) (models.UserInfo, error) {
	var body models.LoginResponse

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&body).
		Post("/api/auth/login")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}
	if body.Token == "" {
		return models.UserInfo{}, fmt.Errorf("login response contains no token")
	}

	b.SetToken(body.Token)
	return body.User, nil
}

// ListPosts implements [BlogClient]. It GETs the public feed from
// GET /api/posts.
func (b *blogHTTPAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	resp, err := b.client.R().
		SetContext(ctx).
		SetResult(&posts).
		Get("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost implements [BlogClient]. It GETs a single post from
// GET /api/posts/{id}.
func (b *blogHTTPAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := b.client.R().
		SetContext(ctx).
		SetResult(&post).
		Get(fmt.Sprintf("/api/posts/%d", postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost implements [BlogClient]. It POSTs the new draft to
// POST /api/posts. Requires an AUTHOR bearer token.
func (b *blogHTTPAdapter) CreatePost(ctx context.Context, request models.PostCreateRequest) (models.Post, error) {
	var post models.Post

	resp, err := b.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&post).
		Post("/api/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// UpdatePost implements [BlogClient]. It PUTs the partial edit to
// PUT /api/posts/{id}. Requires the owning AUTHOR's bearer token.
func (b *blogHTTPAdapter) UpdatePost(ctx context.Context, postID int64, request models.PostUpdateRequest) (models.Post, error) {
	var post models.Post

	resp, err := b.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&post).
		Put(fmt.Sprintf("/api/posts/%d", postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// TogglePublish implements [BlogClient]. It PATCHes
// PATCH /api/posts/{id}/publish and returns the post in its new state.
// Requires the owning AUTHOR's bearer token.
func (b *blogHTTPAdapter) TogglePublish(ctx context.Context, postID int64) (models.Post, error) {
	var body models.PublishResponse

	resp, err := b.authedRequest(ctx).
		SetResult(&body).
		Patch(fmt.Sprintf("/api/posts/%d/publish", postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("toggle publish request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return body.Post, nil
}

// DeletePost implements [BlogClient]. It sends DELETE /api/posts/{id}.
// Requires the owning AUTHOR's bearer token.
func (b *blogHTTPAdapter) DeletePost(ctx context.Context, postID int64) error {
	resp, err := b.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/posts/%d", postID))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListComments implements [BlogClient]. It GETs a post's comments from
// GET /api/posts/{id}/comments, oldest first.
func (b *blogHTTPAdapter) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment

	resp, err := b.client.R().
		SetContext(ctx).
		SetResult(&comments).
		Get(fmt.Sprintf("/api/posts/%d/comments", postID))
	if err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return comments, nil
}

// GetComment implements [BlogClient]. It GETs a single comment from
// GET /api/comments/{id}.
func (b *blogHTTPAdapter) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	var comment models.Comment

	resp, err := b.client.R().
		SetContext(ctx).
		SetResult(&comment).
		Get(fmt.Sprintf("/api/comments/%d", commentID))
	if err != nil {
		return models.Comment{}, fmt.Errorf("get comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// CreateComment implements [BlogClient]. It POSTs the comment to
// POST /api/posts/{id}/comments. Requires any valid bearer token.
func (b *blogHTTPAdapter) CreateComment(ctx context.Context, postID int64, request models.CommentCreateRequest) (models.Comment, error) {
	var comment models.Comment

	resp, err := b.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&comment).
		Post(fmt.Sprintf("/api/posts/%d/comments", postID))
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// UpdateComment implements [BlogClient]. It PUTs the new content to
// PUT /api/comments/{id}. Requires the owner's bearer token.
func (b *blogHTTPAdapter) UpdateComment(ctx context.Context, commentID int64, request models.CommentCreateRequest) (models.Comment, error) {
	var comment models.Comment

	resp, err := b.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&comment).
		Put(fmt.Sprintf("/api/comments/%d", commentID))
	if err != nil {
		return models.Comment{}, fmt.Errorf("update comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// DeleteComment implements [BlogClient]. It sends DELETE /api/comments/{id}.
// Requires the owner's bearer token.
func (b *blogHTTPAdapter) DeleteComment(ctx context.Context, commentID int64) error {
	resp, err := b.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/comments/%d", commentID))
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}

	return mapHTTPError(resp)
}

func (b *blogHTTPAdapter) authedRequest(ctx context.Context) *resty.Request {
	return b.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+b.token)
}
