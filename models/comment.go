package models

import "time"

// Comment is user-owned content attached to a post. Any authenticated user
// may create comments; only the owner may edit or delete them. Comments have
// no publish state.
type Comment struct {
	// ID is the server-assigned unique identifier of the comment.
	ID int64 `json:"id"`

	// Content is the body of the comment. Required at creation.
	Content string `json:"content"`

	// PostID references the parent post. The post must exist; deleting the
	// post cascades to its comments.
	PostID int64 `json:"postId"`

	// AuthorID references the owning user (any role).
	AuthorID int64 `json:"authorId"`

	// CreatedAt is the timestamp when the comment was created.
	CreatedAt time.Time `json:"createdAt"`

	// Author is the public projection of the owning user, populated on
	// reads that join the users table. Nil when not requested.
	Author *UserSummary `json:"author,omitempty"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
