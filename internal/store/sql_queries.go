package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, role, created_at
    FROM users
    WHERE id = $1;`

	createPost = `INSERT INTO posts (title, content, author_id)
    VALUES ($1, $2, $3)
    RETURNING id, title, content, published, author_id, created_at, updated_at;`

	findPostByID = `SELECT p.id, p.title, p.content, p.published, p.author_id, p.created_at, p.updated_at, u.id, u.username
    FROM posts p
    JOIN users u ON u.id = p.author_id
    WHERE p.id = $1;`

	setPostPublished = `UPDATE posts
    SET published = $1, updated_at = CURRENT_TIMESTAMP
    WHERE id = $2
    RETURNING id, title, content, published, author_id, created_at, updated_at;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	createComment = `INSERT INTO comments (content, post_id, author_id)
    VALUES ($1, $2, $3)
    RETURNING id, content, post_id, author_id, created_at;`

	findCommentByID = `SELECT c.id, c.content, c.post_id, c.author_id, c.created_at, u.id, u.username
    FROM comments c
    JOIN users u ON u.id = c.author_id
    WHERE c.id = $1;`

	listCommentsByPost = `SELECT c.id, c.content, c.post_id, c.author_id, c.created_at, u.id, u.username
    FROM comments c
    JOIN users u ON u.id = c.author_id
    WHERE c.post_id = $1
    ORDER BY c.created_at ASC;`

	updateComment = `UPDATE comments
    SET content = $1
    WHERE id = $2
    RETURNING id, content, post_id, author_id, created_at;`

	deleteComment = `DELETE FROM comments WHERE id = $1;`
)

// buildListPublishedPostsQuery builds the public feed query: published posts
// with their author summary, newest first.
func buildListPublishedPostsQuery() (string, []any, error) {
	return sq.Select(
		"p.id", "p.title", "p.content", "p.published", "p.author_id", "p.created_at", "p.updated_at",
		"u.id", "u.username",
	).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		Where(sq.Eq{"p.published": true}).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildUpdatePostQuery builds a partial UPDATE for a post. Only non-nil
// fields are written; every edit also resets the post to draft and bumps
// updated_at. Returns [ErrBuildingSQLQuery] when no fields were provided.
func buildUpdatePostQuery(postID int64, title, content *string) (string, []any, error) {
	if title == nil && content == nil {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := sq.Update("posts").
		Set("published", false).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if title != nil {
		builder = builder.Set("title", *title)
	}
	if content != nil {
		builder = builder.Set("content", *content)
	}

	return builder.
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING id, title, content, published, author_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
