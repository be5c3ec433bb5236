package client

import "errors"

var (
	ErrUnavailable    = errors.New("service unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrRecordNotFound = errors.New("naming record not found")
)
