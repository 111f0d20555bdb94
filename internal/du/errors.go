package du

import "errors"

var (
	// ErrNotDirectory is returned when a directory-only operation receives a
	// file or a dead path.
	ErrNotDirectory = errors.New("not a directory")

	// ErrNotFile is returned when a file-only operation receives a directory
	// or anything else that is not a regular file.
	ErrNotFile = errors.New("not a regular file")
)
