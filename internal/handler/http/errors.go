// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Failures of bearer-token extraction from the Authorization header. The
// auth middleware maps all three to a 401 without telling the client which
// one occurred.
var (
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthorizationHeader = errors.New("authorization header is not of the form `Bearer <token>`")
	ErrEmptyToken                 = errors.New("authorization header carries an empty token")
)
