package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// indent matches the layout of library files written by earlier versions.
const indent = "    "

// encodeCatalog renders c as an indented JSON array. A nil catalog encodes
// as [] rather than null.
func encodeCatalog(c types.Catalog) ([]byte, error) {
	if c == nil {
		c = types.Catalog{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeCatalog validates data against the catalog schema and decodes it.
// Any failure means the data is not a catalog.
func decodeCatalog(data []byte) (types.Catalog, error) {
	if err := validateCatalog(data); err != nil {
		return nil, err
	}
	var c types.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if c == nil {
		c = types.Catalog{}
	}
	return c, nil
}

// writeFileAtomic replaces path with data using the temp-file, fsync, rename
// pattern. The parent directory is created if needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".library-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
