package repository

import "errors"

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound = errors.New("not found")
	// ErrNotReady is returned by Ping until the resource tables are built.
	ErrNotReady = errors.New("resource tables not ready")
)
