package storage

import "errors"

var (
	// ErrNotFound - the resolved path has no file behind it.
	ErrNotFound = errors.New("file not found")
	// ErrPathViolation - the resolved path would leave the caller's
	// directory. Never retried, logged as a potential probe.
	ErrPathViolation = errors.New("path escapes user storage directory")
)
