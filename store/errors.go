package store

import "errors"

var (
	// ErrNotFound is returned by Open when the file does not exist.
	ErrNotFound = errors.New("store: file not found")

	// ErrExists is returned by Create when the file already exists.
	ErrExists = errors.New("store: file already exists")

	// ErrSchema is returned when the file has no dataset description.
	ErrSchema = errors.New("store: missing dataset description")

	// ErrCorrupt is returned when a stored row cannot be decoded or the
	// profile indices are not contiguous.
	ErrCorrupt = errors.New("store: corrupt profile data")
)
