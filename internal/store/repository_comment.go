package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/models"
)

// commentRepository is the SQL-backed implementation of [CommentRepository].
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new comment on a post.
func (r *commentRepository) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment, comment.Content, comment.PostID, comment.AuthorID)

	var saved models.Comment
	if err := row.Scan(&saved.ID, &saved.Content, &saved.PostID, &saved.AuthorID, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.Create").Msg("error saving comment")
		return models.Comment{}, r.db.wrapUnexpected(ctx, err)
	}

	return saved, nil
}

// FindByID retrieves a comment with its author summary.
// Returns [ErrCommentNotFound] when no such comment exists.
func (r *commentRepository) FindByID(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findCommentByID, commentID)

	comment, err := scanCommentWithAuthor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.FindByID").Msg("error finding comment")
		return models.Comment{}, r.db.wrapUnexpected(ctx, err)
	}

	return comment, nil
}

// ListByPost returns every comment on a post with author summaries, oldest
// first, so a thread reads top to bottom. An empty thread yields an empty
// (non-nil) slice.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCommentsByPost, postID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListByPost").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanCommentWithAuthor(rows)
		if err != nil {
			log.Err(err).Str("func", "*commentRepository.ListByPost").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// Update replaces a comment's content. Returns [ErrCommentNotFound] when the
// comment does not exist.
func (r *commentRepository) Update(ctx context.Context, commentID int64, content string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateComment, content, commentID)

	var updated models.Comment
	if err := row.Scan(&updated.ID, &updated.Content, &updated.PostID, &updated.AuthorID, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.Update").Msg("error updating comment")
		return models.Comment{}, r.db.wrapUnexpected(ctx, err)
	}

	return updated, nil
}

// Delete removes a comment. Returns [ErrCommentNotFound] when nothing was
// deleted.
func (r *commentRepository) Delete(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.Delete").Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func scanCommentWithAuthor(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	var author models.UserSummary

	err := row.Scan(
		&comment.ID, &comment.Content, &comment.PostID, &comment.AuthorID, &comment.CreatedAt,
		&author.ID, &author.Username,
	)
	if err != nil {
		return models.Comment{}, err
	}

	comment.Author = &author
	return comment, nil
}
