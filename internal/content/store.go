package content

import (
	"log/slog"
	"sync/atomic"
)

// Store holds the active site content. Readers never block on a reload.
type Store struct {
	loader  *Loader
	current atomic.Pointer[Site]
}

// NewStore loads content once; the site cannot start without valid content.
func NewStore(loader *Loader) (*Store, error) {
	site, err := loader.Load()
	if err != nil {
		return nil, err
	}
	s := &Store{loader: loader}
	s.current.Store(site)
	return s, nil
}

// Site returns the active content. Callers must treat it as read-only.
func (s *Store) Site() *Site {
	return s.current.Load()
}

// Reload re-reads content. On failure the previous content stays active.
func (s *Store) Reload() error {
	site, err := s.loader.Load()
	if err != nil {
		slog.Warn("content reload rejected, keeping previous content", "error", err)
		return err
	}
	s.current.Store(site)
	slog.Info("content reloaded", "brand", site.Landing.Brand.Name, "resume", site.Resume.Name)
	return nil
}
