// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"strings"

	"github.com/paveldk/go-blog-api/internal/adapter"
	"github.com/paveldk/go-blog-api/internal/store"
)

// Server error-body messages the mapper discriminates on. They mirror the
// strings the HTTP handlers put into the `{"error": ...}` body.
const (
	msgEmailAlreadyInUse  = "email already in use"
	msgInvalidCredentials = "invalid email or password"
	msgInsufficientRole   = "insufficient role"
	msgUserNotFound       = "user not found"
	msgCommentNotFound    = "comment not found"
)

// mapAdapterError translates the adapter's transport error into a service
// business error so the UI never has to inspect HTTP statuses or body text.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == msgEmailAlreadyInUse {
			return store.ErrEmailAlreadyExists
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == msgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		if msg == msgInsufficientRole {
			return ErrInsufficientRole
		}
		return ErrNotOwner

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case msgCommentNotFound:
			return store.ErrCommentNotFound
		case msgUserNotFound:
			return store.ErrUserNotFound
		}
		return store.ErrPostNotFound
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
