package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:bundles
var bundlesContent embed.FS

// BundleFS returns the template bundle tree rooted at the bundle directory,
// so callers address bundles as "common/linting", "vite/deploy/vercel", etc.
func BundleFS() fs.FS {
	sub, err := fs.Sub(bundlesContent, "bundles")
	if err != nil {
		panic(err)
	}
	return sub
}
