package commands

import (
	"errors"
	"fmt"
)

// ErrNotDirectory reports a traversal root that exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// IOError is raised when the filesystem cannot be queried during a build.
// It carries the path involved and the underlying operating-system error.
type IOError struct {
	Path string
	Err  error
}

func (ioError *IOError) Error() string {
	return fmt.Sprintf("%s: %v", ioError.Path, ioError.Err)
}

func (ioError *IOError) Unwrap() error {
	return ioError.Err
}
