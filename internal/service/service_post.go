package service

import (
	"context"
	"fmt"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/models"
)

// postService is the concrete implementation of PostService.
//
// Every mutation follows the same shape: load the post, report a missing
// post first, then check ownership, then apply the change. Keeping the
// existence check ahead of the ownership check means a non-owner probing a
// random ID learns only whether the post exists, which the public feed
// reveals anyway for published posts.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService over the given repository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// Create stores a new draft post owned by authorID. Posts always start
// unpublished regardless of the request payload.
func (p *postService) Create(ctx context.Context, authorID int64, request models.PostCreateRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if request.Title == "" || request.Content == "" {
		log.Error().Int64("authorID", authorID).Msg("invalid post data provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	created, err := p.postRepository.Create(ctx, models.Post{
		Title:    request.Title,
		Content:  request.Content,
		AuthorID: authorID,
	})
	if err != nil {
		log.Err(err).Int64("authorID", authorID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns a single post by ID regardless of its published state.
// Unpublished posts are reachable by direct ID on purpose: the feed is the
// only place drafts are hidden.
func (p *postService) Get(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup ended with error: %w", err)
	}

	return post, nil
}

// ListPublished returns the public feed: published posts only, newest first,
// each with its author summary.
func (p *postService) ListPublished(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("post listing ended with error: %w", err)
	}

	return posts, nil
}

// Update applies a partial edit to a post owned by requesterID. Any
// successful edit sends the post back to draft state; it must be explicitly
// republished afterwards.
func (p *postService) Update(ctx context.Context, requesterID, postID int64, request models.PostUpdateRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if request.Title == nil && request.Content == nil {
		log.Error().Int64("postID", postID).Msg("empty post update provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	post, err := p.postRepository.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup ended with error: %w", err)
	}

	if err := checkOwnership(requesterID, post.AuthorID); err != nil {
		log.Error().Int64("requesterID", requesterID).Int64("ownerID", post.AuthorID).Msg("post update denied")
		return models.Post{}, err
	}

	updated, err := p.postRepository.Update(ctx, postID, request.Title, request.Content)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return updated, nil
}

// TogglePublish flips a post between draft and published. Only the owner may
// toggle; there is no separate review step.
func (p *postService) TogglePublish(ctx context.Context, requesterID, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup ended with error: %w", err)
	}

	if err := checkOwnership(requesterID, post.AuthorID); err != nil {
		log.Error().Int64("requesterID", requesterID).Int64("ownerID", post.AuthorID).Msg("publish toggle denied")
		return models.Post{}, err
	}

	updated, err := p.postRepository.SetPublished(ctx, postID, !post.Published)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("publish toggle ended with error")
		return models.Post{}, fmt.Errorf("publish toggle ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a post owned by requesterID together with its comments.
func (p *postService) Delete(ctx context.Context, requesterID, postID int64) error {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.FindByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post lookup ended with error: %w", err)
	}

	if err := checkOwnership(requesterID, post.AuthorID); err != nil {
		log.Error().Int64("requesterID", requesterID).Int64("ownerID", post.AuthorID).Msg("post delete denied")
		return err
	}

	if err := p.postRepository.Delete(ctx, postID); err != nil {
		log.Err(err).Int64("postID", postID).Msg("post delete ended with error")
		return fmt.Errorf("post delete ended with error: %w", err)
	}

	return nil
}
