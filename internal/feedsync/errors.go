package feedsync

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned for any mutating call without a signed-in
	// user. No local or remote state change happens.
	ErrUnauthenticated = errors.New("sign in required")

	// ErrEmptyInput is returned when comment text trims to nothing. Rejected
	// before any remote call.
	ErrEmptyInput = errors.New("text is empty")

	// ErrNotOwner is returned when a delete is attempted by someone other than
	// the meme's author.
	ErrNotOwner = errors.New("only the author can delete this meme")

	// ErrNotFound is returned when the target document no longer exists in the
	// store.
	ErrNotFound = errors.New("meme not found")

	// ErrMalformedRecord is returned by the store boundary when a document is
	// missing required fields. Malformed records are rejected there instead of
	// leaking partial state into views.
	ErrMalformedRecord = errors.New("malformed meme record")
)

// RemoteMutationError wraps a Feed Store failure. For likes and comments the
// optimistic local transition has already been applied and is NOT rolled back
// when this is returned; for deletes no local transition happened.
type RemoteMutationError struct {
	Op  string
	Err error
}

func (e *RemoteMutationError) Error() string {
	return fmt.Sprintf("%s: remote mutation failed: %v", e.Op, e.Err)
}

func (e *RemoteMutationError) Unwrap() error { return e.Err }
