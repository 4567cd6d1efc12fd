package registry

import "errors"

var (
	// ErrLookupFailed is joined with store errors raised while checking a candidate.
	ErrLookupFailed = errors.New("registry: slug lookup failed")

	// ErrClaimFailed is joined with store errors raised while claiming a candidate.
	ErrClaimFailed = errors.New("registry: slug claim failed")
)
