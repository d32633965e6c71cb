package blobstore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Store is the byte-storage abstraction used by the mutation service.
// Put writes the full stream under key, overwriting any existing blob
// with the same key, and returns the number of bytes written.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
}

// Key derives the storage key for an image blob from the record id and
// the original upload name. Keying on the id keeps blobs unique per
// record even when two users upload files with identical names.
func Key(id uint, original string) string {
	return fmt.Sprintf("%d-%s", id, sanitizeName(original))
}

// sanitizeName strips any path components from the client-supplied file
// name and reduces it to [A-Za-z0-9._-].
func sanitizeName(name string) string {
	// Browsers on some platforms submit full paths with backslashes.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	base := filepath.Base(name)
	if base == "." || base == "/" {
		base = "upload"
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
