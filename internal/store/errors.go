package store

import "errors"

// Sentinel errors returned by the directory preparer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotDirectory is returned when a configured path exists but is not
	// a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrNotWritable is returned when a configured directory cannot be
	// created or a file cannot be created inside it.
	ErrNotWritable = errors.New("directory is not writable")
)
