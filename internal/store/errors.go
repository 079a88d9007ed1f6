package store

import "errors"

// Domain sentinels surfaced by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrEmailAlreadyExists reports a registration that tripped the unique
	// constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound reports a user lookup with an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound reports a query or mutation against a post that does
	// not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound reports a query or mutation against a comment
	// that does not exist.
	ErrCommentNotFound = errors.New("comment was not found")
)

// SQL-level failures, wrapped around the driver error before any domain
// interpretation happens.
var (
	// ErrBuildingSQLQuery reports a squirrel builder failure, such as an
	// update with no columns to set.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery reports a failed read query.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement reports a failed INSERT, UPDATE, or DELETE.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow reports a scan failure on a single-row result.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows reports a scan failure during multi-row iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
