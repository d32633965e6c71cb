package gallery

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that the referenced image no longer exists.
	ErrNotFound = errors.New("image not found")

	// ErrForbidden signals a mutation attempted by a non-owner.
	ErrForbidden = errors.New("not the owner of this image")

	// ErrIdentityMismatch signals that the path id and the payload id of
	// an edit disagree. Terminal; nothing is persisted.
	ErrIdentityMismatch = errors.New("path id does not match payload id")

	// ErrConflict signals an optimistic-concurrency collision: the record
	// changed since the committer last read it. Never retried here.
	ErrConflict = errors.New("image was modified concurrently")
)

// ValidationError reports structural input failure. It carries the
// per-field messages so the caller can redisplay the submitted form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %d field(s) rejected", len(e.Fields))
}
