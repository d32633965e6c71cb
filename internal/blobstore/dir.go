package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dir stores blobs as plain files under a fixed root directory.
type Dir struct {
	root string
}

func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &Dir{root: root}, nil
}

// Put writes the stream to a temp file in the root and renames it into
// place, so a partial write never becomes visible under the final key.
func (d *Dir) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(d.root, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp blob: %w", err)
	}

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("write blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("close temp blob: %w", err)
	}

	dst := filepath.Join(d.root, key)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("store blob %s: %w", key, err)
	}
	return n, nil
}

// Path returns the absolute location of a stored blob. Used by the view
// layer to serve files; the core itself only writes.
func (d *Dir) Path(key string) string {
	return filepath.Join(d.root, key)
}
