// SPDX-License-Identifier: Apache-2.0

package models

// RegisterRequest is the body of POST /api/auth/register.
// Role is optional and defaults to USER when empty.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostCreateRequest is the body of POST /api/posts.
// Both fields are required.
type PostCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostUpdateRequest is the body of PUT /api/posts/{id}. Fields are pointers
// so a partial edit can tell "omitted" from "set to empty": a nil field
// keeps its current value, and at least one field must be present. Any
// accepted update forces the post back to draft.
type PostUpdateRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CommentCreateRequest is the body of POST /api/posts/{postId}/comments
// and PUT /api/comments/{id}.
type CommentCreateRequest struct {
	Content string `json:"content"`
}
