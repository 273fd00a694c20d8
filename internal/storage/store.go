package storage

import (
	"context"
	"io"
)

// Store is a flat file storage backend used for inquiries and static exports.
// Paths are slash-separated and relative to the store root.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	List(ctx context.Context, dir string) ([]string, error)
	Delete(ctx context.Context, path string) error
}
