package slug

import "errors"

var (
	// ErrEncoding is returned when input text cannot be represented in the target encoding.
	ErrEncoding = errors.New("slug: text cannot be represented in target encoding")

	// ErrInvalidOptions is returned when options make slug generation nonsensical.
	ErrInvalidOptions = errors.New("slug: invalid options")

	// ErrUnknownEncoding is returned when the encoding name is not a known IANA charset.
	ErrUnknownEncoding = errors.New("slug: unknown encoding")

	// ErrExhausted is returned by the resolver when every probe was rejected
	// and strict exhaustion is enabled. By default exhaustion yields the base slug.
	ErrExhausted = errors.New("slug: no unique candidate found")
)
