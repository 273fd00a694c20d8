package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"

	"github.com/nfrund/landing/internal/domain"
	"github.com/spf13/afero"
)

// AferoStore implements Store on any afero filesystem: memory in tests and
// when INQUIRY_DIR is unset, a base-path OS filesystem otherwise.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDirStore roots a store at dir on disk, or in memory when dir is empty.
func NewDirStore(dir string) (*AferoStore, error) {
	if dir == "" {
		return NewAferoStore(afero.NewMemMapFs()), nil
	}
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return NewAferoStore(afero.NewBasePathFs(osFs, dir)), nil
}

// Save writes reader to path, creating parent directories as needed.
// A failed Close is reported, since it may mean the data never reached disk.
func (s *AferoStore) Save(ctx context.Context, p string, reader io.Reader) (n int64, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(p)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", p, cerr)
		}
	}()
	return io.Copy(f, reader)
}

// Open opens path for reading.
func (s *AferoStore) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	f, err := s.fs.OpenFile(p, os.O_RDONLY, 0)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, p)
	}
	return f, err
}

// List returns the names of regular files directly under dir, sorted.
// A missing directory lists as empty.
func (s *AferoStore) List(ctx context.Context, dir string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a file.
func (s *AferoStore) Delete(ctx context.Context, p string) error {
	return s.fs.Remove(p)
}
