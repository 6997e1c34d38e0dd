package files

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPath is returned by Save when no path is bound yet.
	ErrNoPath = errors.New("no file path bound")
	// ErrCanceled is returned when a dialog produced no path.
	ErrCanceled = errors.New("canceled")
)

// IOFailure is a recoverable read, write or stat failure.
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error { return e.Err }

// DecodeFailure reports content that is not valid UTF-8. Offset is the byte
// offset of the first invalid sequence.
type DecodeFailure struct {
	Path   string
	Offset int
}

func (e *DecodeFailure) Error() string {
	return fmt.Sprintf("decode %s: invalid UTF-8 at byte %d", e.Path, e.Offset)
}
