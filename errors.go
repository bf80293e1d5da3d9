package dotenv

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is matched by errors.Is for every *FileNotFoundError.
	ErrFileNotFound = errors.New("dotenv: file not found")

	// ErrInvalidKey is returned by Set for keys the process environment cannot hold
	// (empty, or containing '=' or NUL).
	ErrInvalidKey = errors.New("dotenv: invalid key")

	// ErrInvalidValue is returned by Set for values the process environment cannot hold
	// (containing NUL).
	ErrInvalidValue = errors.New("dotenv: invalid value")
)

// FileNotFoundError is returned by Load when the path is missing or is not a regular file.
// The store is left untouched.
type FileNotFoundError struct {
	Path string
	Err  error // Underlying stat error, nil when the path exists but is not a regular file
}

// Error formats the failure with the offending path.
func (e *FileNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dotenv: file not found: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("dotenv: file not found: %s: not a regular file", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFileNotFound) true.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}
