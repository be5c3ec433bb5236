package common

import "errors"

var (
	// Remote response validation.
	ErrInvalidCID    = errors.New("invalid cid")
	ErrEmptyResponse = errors.New("empty response")

	// A publish needs both halves of the binding.
	ErrMissingUpload = errors.New("upload result is required")
	ErrMissingRecord = errors.New("naming record is required")

	// Configuration.
	ErrUnknownBackend = errors.New("unknown backend")
)
