package plan

import (
	"io/fs"
)

// Presence is the answer of a bundle lookup. Absence of an optional bundle
// is a declared outcome, not an error.
type Presence int

const (
	Absent Presence = iota
	Present
)

// Registry answers whether a bundle directory exists in the template tree.
type Registry struct {
	fsys fs.FS
}

func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys}
}

// Lookup reports whether the bundle at the given path exists.
func (r *Registry) Lookup(ref BundleRef) Presence {
	info, err := fs.Stat(r.fsys, ref.Path())
	if err != nil || !info.IsDir() {
		return Absent
	}
	return Present
}
