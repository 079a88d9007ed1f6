// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
//
// Read methods join the users table so every returned post carries its
// author's public summary. Mutations use RETURNING clauses so callers always
// see the database's view of the row, including trigger-free timestamp
// updates done in SQL.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new draft post. The published flag is left to its column
// default (false) regardless of what the input carries.
func (r *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPost, post.Title, post.Content, post.AuthorID)

	var saved models.Post
	if err := row.Scan(&saved.ID, &saved.Title, &saved.Content, &saved.Published, &saved.AuthorID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.Create").Msg("error saving post")
		return models.Post{}, r.db.wrapUnexpected(ctx, err)
	}

	return saved, nil
}

// FindByID retrieves a post with its author summary regardless of published
// state. Returns [ErrPostNotFound] when no such post exists.
func (r *postRepository) FindByID(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPostByID, postID)

	post, err := scanPostWithAuthor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.FindByID").Msg("error finding post")
		return models.Post{}, r.db.wrapUnexpected(ctx, err)
	}

	return post, nil
}

// ListPublished returns every published post with its author summary,
// ordered newest first. An empty feed yields an empty (non-nil) slice.
func (r *postRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPublishedPostsQuery()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPublished").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPublished").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPublished").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// Update applies a partial edit to a post. Only non-nil fields are written;
// any successful edit also forces the post back to draft state. Returns
// [ErrPostNotFound] when the post does not exist.
func (r *postRepository) Update(ctx context.Context, postID int64, title, content *string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(postID, title, content)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Update").Msg("error building query")
		return models.Post{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Post
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Content, &updated.Published, &updated.AuthorID, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.Update").Msg("error updating post")
		return models.Post{}, r.db.wrapUnexpected(ctx, err)
	}

	return updated, nil
}

// SetPublished flips the published flag and bumps updated_at. Returns
// [ErrPostNotFound] when the post does not exist.
func (r *postRepository) SetPublished(ctx context.Context, postID int64, published bool) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, setPostPublished, published, postID)

	var updated models.Post
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Content, &updated.Published, &updated.AuthorID, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.SetPublished").Msg("error updating post")
		return models.Post{}, r.db.wrapUnexpected(ctx, err)
	}

	return updated, nil
}

// Delete removes a post. Comments attached to it are removed by the
// ON DELETE CASCADE constraint. Returns [ErrPostNotFound] when nothing was
// deleted.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Delete").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// rowScanner is the shared subset of *sql.Row and *sql.Rows used by
// scanPostWithAuthor.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostWithAuthor(row rowScanner) (models.Post, error) {
	var post models.Post
	var author models.UserSummary

	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.Published, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Username,
	)
	if err != nil {
		return models.Post{}, err
	}

	post.Author = &author
	return post, nil
}
