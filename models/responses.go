// SPDX-License-Identifier: Apache-2.0

package models

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of operations that return a confirmation
// message only (e.g. delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// LoginResponse is the body of a successful login. Token is the compact JWS
// string the client presents as "Authorization: Bearer <token>".
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// PublishResponse is the body of the publish toggle: a human-readable
// state-change message plus the updated post.
type PublishResponse struct {
	Message string `json:"message"`
	Post    Post   `json:"post"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Message string `json:"message"`
}
