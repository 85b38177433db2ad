package types

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultLibraryFile is the store file name used when none is configured.
const DefaultLibraryFile = "library.txt"

// Config locates the store file.
type Config struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	LibraryFile string `json:"library_file" yaml:"library_file"`
}

// Config validation errors.
var (
	ErrLibraryFileEmpty   = errors.New("library file must not be empty")
	ErrLibraryFileNotBase = errors.New("library file must be a bare file name")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.LibraryFile == "" {
		return ErrLibraryFileEmpty
	}
	if strings.ContainsAny(c.LibraryFile, `/\`) || c.LibraryFile == "." || c.LibraryFile == ".." {
		return ErrLibraryFileNotBase
	}
	return nil
}

// Path returns the store file path. An empty DataDir means the current
// working directory.
func (c Config) Path() string {
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, c.LibraryFile)
}
