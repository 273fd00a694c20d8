package web

import (
	"embed"
	"io/fs"
)

// FS contains all embedded web assets: static files and the default site content.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/css/*.css static/js/*.js content/*.yaml
var FS embed.FS

// StaticFS is the static asset tree rooted at web/static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// ContentFS is the default content tree rooted at web/content.
func ContentFS() fs.FS {
	sub, err := fs.Sub(FS, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
