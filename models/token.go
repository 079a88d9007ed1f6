package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the JWT claim set used by the auth flow. It embeds [jwt.Token]
// for signing and parsing, [jwt.RegisteredClaims] for the RFC 7519 claim
// set, and adds the account role as a custom claim so authorization checks
// need no store round trip.
type Token struct {
	// Only the compact string form is meaningful outside the server
	// process, so the raw token stays out of JSON.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Role is the permission class captured at issuance. A role change
	// after issuance is not reflected until the token expires.
	Role Role `json:"role,omitempty"`

	// SignedString is the compact JWS form (header.payload.signature),
	// ready to travel in an Authorization header.
	SignedString string `json:"-"`

	// UserID caches the parsed "sub" claim server-side.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64 user identifier.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("reading token subject: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject is not a user ID: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] by returning the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
