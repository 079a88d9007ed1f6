package service

import (
	"context"
	"fmt"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/models"
)

// commentService is the concrete implementation of CommentService.
//
// It carries the post repository alongside its own so that creating or
// listing comments can verify that the target post exists and surface
// store.ErrPostNotFound rather than a foreign-key violation.
type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService over the given repositories.
func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		logger:            logger,
	}
}

// Create attaches a new comment to a post. Any authenticated user may
// comment; the post does not have to be published, only to exist.
func (c *commentService) Create(ctx context.Context, authorID, postID int64, request models.CommentCreateRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if request.Content == "" {
		log.Error().Int64("postID", postID).Msg("invalid comment data provided")
		return models.Comment{}, ErrInvalidDataProvided
	}

	if _, err := c.postRepository.FindByID(ctx, postID); err != nil {
		return models.Comment{}, fmt.Errorf("post lookup ended with error: %w", err)
	}

	created, err := c.commentRepository.Create(ctx, models.Comment{
		Content:  request.Content,
		PostID:   postID,
		AuthorID: authorID,
	})
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns a single comment by ID with its author summary.
func (c *commentService) Get(ctx context.Context, commentID int64) (models.Comment, error) {
	comment, err := c.commentRepository.FindByID(ctx, commentID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment lookup ended with error: %w", err)
	}

	return comment, nil
}

// ListByPost returns every comment on a post, oldest first. The post must
// exist; an existing post with no comments yields an empty list.
func (c *commentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := c.postRepository.FindByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("post lookup ended with error: %w", err)
	}

	comments, err := c.commentRepository.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("comment listing ended with error: %w", err)
	}

	return comments, nil
}

// Update replaces the content of a comment owned by requesterID.
func (c *commentService) Update(ctx context.Context, requesterID, commentID int64, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if content == "" {
		log.Error().Int64("commentID", commentID).Msg("empty comment update provided")
		return models.Comment{}, ErrInvalidDataProvided
	}

	comment, err := c.commentRepository.FindByID(ctx, commentID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment lookup ended with error: %w", err)
	}

	if err := checkOwnership(requesterID, comment.AuthorID); err != nil {
		log.Error().Int64("requesterID", requesterID).Int64("ownerID", comment.AuthorID).Msg("comment update denied")
		return models.Comment{}, err
	}

	updated, err := c.commentRepository.Update(ctx, commentID, content)
	if err != nil {
		log.Err(err).Int64("commentID", commentID).Msg("comment update ended with error")
		return models.Comment{}, fmt.Errorf("comment update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a comment owned by requesterID.
func (c *commentService) Delete(ctx context.Context, requesterID, commentID int64) error {
	log := logger.FromContext(ctx)

	comment, err := c.commentRepository.FindByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("comment lookup ended with error: %w", err)
	}

	if err := checkOwnership(requesterID, comment.AuthorID); err != nil {
		log.Error().Int64("requesterID", requesterID).Int64("ownerID", comment.AuthorID).Msg("comment delete denied")
		return err
	}

	if err := c.commentRepository.Delete(ctx, commentID); err != nil {
		log.Err(err).Int64("commentID", commentID).Msg("comment delete ended with error")
		return fmt.Errorf("comment delete ended with error: %w", err)
	}

	return nil
}
