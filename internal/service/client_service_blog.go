package service

import (
	"context"
	"strings"

	"github.com/paveldk/go-blog-api/internal/adapter"
	"github.com/paveldk/go-blog-api/models"
)

type clientBlogService struct {
	blogClient adapter.BlogClient
}

func NewClientBlogService(blogClient adapter.BlogClient) ClientBlogService {
	return &clientBlogService{blogClient: blogClient}
}

// Feed implements [ClientBlogService].
func (c *clientBlogService) Feed(ctx context.Context) ([]models.Post, error) {
	posts, err := c.blogClient.ListPosts(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return posts, nil
}

// GetPost implements [ClientBlogService].
func (c *clientBlogService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := c.blogClient.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, mapAdapterError(err)
	}

	return post, nil
}

// CreateDraft implements [ClientBlogService]. Title and content are both
// required; validation happens locally before the request is sent.
func (c *clientBlogService) CreateDraft(ctx context.Context, title, content string) (models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	post, err := c.blogClient.CreatePost(ctx, models.PostCreateRequest{Title: title, Content: content})
	if err != nil {
		return models.Post{}, mapAdapterError(err)
	}

	return post, nil
}

// EditPost implements [ClientBlogService]. Fields the user left blank are
// omitted from the request entirely so the server keeps their current
// values; at least one field must be filled in.
func (c *clientBlogService) EditPost(ctx context.Context, postID int64, title, content string) (models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" && content == "" {
		return models.Post{}, ErrInvalidDataProvided
	}

	var request models.PostUpdateRequest
	if title != "" {
		request.Title = &title
	}
	if content != "" {
		request.Content = &content
	}

	post, err := c.blogClient.UpdatePost(ctx, postID, request)
	if err != nil {
		return models.Post{}, mapAdapterError(err)
	}

	return post, nil
}

// TogglePublish implements [ClientBlogService].
func (c *clientBlogService) TogglePublish(ctx context.Context, postID int64) (models.Post, error) {
	post, err := c.blogClient.TogglePublish(ctx, postID)
	if err != nil {
		return models.Post{}, mapAdapterError(err)
	}

	return post, nil
}

// DeletePost implements [ClientBlogService].
func (c *clientBlogService) DeletePost(ctx context.Context, postID int64) error {
	return mapAdapterError(c.blogClient.DeletePost(ctx, postID))
}

// ListComments implements [ClientBlogService].
func (c *clientBlogService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments, err := c.blogClient.ListComments(ctx, postID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return comments, nil
}

// GetComment implements [ClientBlogService].
func (c *clientBlogService) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	comment, err := c.blogClient.GetComment(ctx, commentID)
	if err != nil {
		return models.Comment{}, mapAdapterError(err)
	}

	return comment, nil
}

// AddComment implements [ClientBlogService].
func (c *clientBlogService) AddComment(ctx context.Context, postID int64, content string) (models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	comment, err := c.blogClient.CreateComment(ctx, postID, models.CommentCreateRequest{Content: content})
	if err != nil {
		return models.Comment{}, mapAdapterError(err)
	}

	return comment, nil
}

// EditComment implements [ClientBlogService].
func (c *clientBlogService) EditComment(ctx context.Context, commentID int64, content string) (models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	comment, err := c.blogClient.UpdateComment(ctx, commentID, models.CommentCreateRequest{Content: content})
	if err != nil {
		return models.Comment{}, mapAdapterError(err)
	}

	return comment, nil
}

// DeleteComment implements [ClientBlogService].
func (c *clientBlogService) DeleteComment(ctx context.Context, commentID int64) error {
	return mapAdapterError(c.blogClient.DeleteComment(ctx, commentID))
}
