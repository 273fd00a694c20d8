// Package exporter writes the rendered site to a directory for static hosting.
package exporter

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path"
	"path/filepath"

	"github.com/nfrund/landing/internal/storage"
	"github.com/nfrund/landing/web"
	"github.com/spf13/afero"
)

// Page maps a route to the file it is written to.
type Page struct {
	Route string
	File  string
}

// Pages are the routes rendered by Export.
var Pages = []Page{
	{Route: "/", File: "index.html"},
	{Route: "/resume", File: "resume/index.html"},
}

// PublicImagesDir is the directory under the public root whose files pages
// reference as /images/...
const PublicImagesDir = "images"

// Option configures Export.
type Option func(*options)

type options struct {
	public afero.Fs
}

// WithPublicFS copies public's images/ tree into the export, mirroring what
// the server serves from PUBLIC_DIR.
func WithPublicFS(public afero.Fs) Option {
	return func(o *options) { o.public = public }
}

// Export renders every page through handler and writes the results, plus the
// embedded static assets under static/, into dir on fsys.
func Export(ctx context.Context, handler http.Handler, fsys afero.Fs, dir string, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	out := storage.NewAferoStore(afero.NewBasePathFs(fsys, dir))

	for _, p := range Pages {
		body, err := renderRoute(ctx, handler, p.Route)
		if err != nil {
			return err
		}
		if _, err := out.Save(ctx, p.File, bytes.NewReader(body)); err != nil {
			return fmt.Errorf("write %s: %w", p.File, err)
		}
		slog.Info("Exported page", "route", p.Route, "file", path.Join(dir, p.File), "bytes", len(body))
	}

	if err := copyStatic(ctx, web.StaticFS(), out); err != nil {
		return err
	}
	if o.public != nil {
		return copyPublicImages(ctx, o.public, out)
	}
	return nil
}

func renderRoute(ctx context.Context, handler http.Handler, route string) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("render %s: status %d", route, rec.Code)
	}
	return rec.Body.Bytes(), nil
}

func copyStatic(ctx context.Context, static fs.FS, out storage.Store) error {
	return fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := static.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := out.Save(ctx, path.Join("static", p), f); err != nil {
			return fmt.Errorf("copy static %s: %w", p, err)
		}
		return nil
	})
}

func copyPublicImages(ctx context.Context, public afero.Fs, out storage.Store) error {
	exists, err := afero.DirExists(public, PublicImagesDir)
	if err != nil {
		return fmt.Errorf("stat public images: %w", err)
	}
	if !exists {
		slog.Warn("No public images to export", "dir", PublicImagesDir)
		return nil
	}

	copied := 0
	err = afero.Walk(public, PublicImagesDir, func(p string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		f, err := public.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := out.Save(ctx, filepath.ToSlash(p), f); err != nil {
			return fmt.Errorf("copy image %s: %w", p, err)
		}
		copied++
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("Exported public images", "count", copied)
	return nil
}
