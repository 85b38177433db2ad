package types

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	ErrCorrupted     = errors.New("library file is corrupted")
	ErrInvalidYear   = errors.New("invalid publication year")
	ErrInvalidField  = errors.New("invalid search field")
	ErrInvalidFormat = errors.New("invalid output format")
)

// CorruptError reports a store file that exists but does not hold a valid
// catalog. It matches ErrCorrupted with errors.Is.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCorrupted, e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Is reports ErrCorrupted as a match.
func (e *CorruptError) Is(target error) bool {
	return target == ErrCorrupted
}
