package models

import "time"

// Post is author-owned content with a two-state lifecycle: draft
// (published=false) and published. A post always starts as a draft, any
// successful edit forces it back to draft, and the publish toggle flips
// the flag unconditionally.
type Post struct {
	// ID is the server-assigned unique identifier of the post.
	ID int64 `json:"id"`

	// Title is the headline of the post. Required at creation.
	Title string `json:"title"`

	// Content is the body of the post. Required at creation.
	Content string `json:"content"`

	// Published reports whether the post is visible in the public listing.
	Published bool `json:"published"`

	// AuthorID references the owning user. Only an AUTHOR account may own
	// posts; only the owner may mutate them.
	AuthorID int64 `json:"authorId"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent mutation.
	UpdatedAt time.Time `json:"updatedAt"`

	// Author is the public projection of the owning user, populated on
	// reads that join the users table. Nil when not requested.
	Author *UserSummary `json:"author,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
