// Package render holds the contracts shared by the application registry and
// whatever engine turns a component into host markup.
package render

import (
	"maps"
)

// Props are the initial properties handed to a component.
type Props map[string]any

// Clone returns a shallow copy. A nil Props clones to an empty map.
func (p Props) Clone() Props {
	if p == nil {
		return Props{}
	}
	return maps.Clone(p)
}

// MountPoint is an opaque descriptor of where a live UI tree is attached.
// Only the renderer that issued it knows how to resolve it.
type MountPoint interface {
	ID() string
}

// RootTag is the plain mount-point descriptor: an element id.
type RootTag string

func (t RootTag) ID() string { return string(t) }

// Selector renders a mount point the way host pages address it ("#root").
func Selector(mp MountPoint) string {
	if mp == nil {
		return ""
	}
	return "#" + mp.ID()
}

// Renderer is the engine the registry delegates to.
type Renderer interface {
	// Render attaches (or replaces) the UI tree at mp.
	Render(c Component, props Props, mp MountPoint) error
	// Prerender produces static markup without touching any mount point.
	Prerender(c Component, props Props) (string, error)
	// Unmount detaches whatever tree currently occupies mp.
	Unmount(mp MountPoint) error
}
