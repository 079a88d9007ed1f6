package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values that fail validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any login failure. An unknown
	// email and a wrong password produce the same error so callers cannot
	// probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any token validation
	// failure: expired, malformed, wrong signature, or wrong issuer.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotOwner is returned when a requester tries to mutate a resource
	// created by another user.
	ErrNotOwner = errors.New("requester is not the resource owner")

	// ErrInsufficientRole is the client-side translation of the server
	// rejecting a post mutation because the account is not an AUTHOR.
	ErrInsufficientRole = errors.New("author role required")
)
