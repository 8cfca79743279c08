package fspath

import (
	"iter"
	"strings"
)

// Remote is a slash-delimited path representation, the namespace format of
// the synced remote. The zero value is the empty relative path.
type Remote struct {
	path     string
	absolute bool
}

const remoteSeparator = '/'

// NewRemote wraps path, treating a leading slash as the absolute marker.
func NewRemote(path string) Remote {
	return Remote{path: path, absolute: path != "" && path[0] == remoteSeparator}
}

// IsAbsolute reports whether the path starts at the remote root.
func (p Remote) IsAbsolute() bool {
	return p.absolute
}

// IsEmpty reports whether the path holds no text.
func (p Remote) IsEmpty() bool {
	return p.path == ""
}

// String returns the underlying slash-delimited text.
func (p Remote) String() string {
	return p.path
}

// NextComponent extracts the component at cursor and advances the cursor
// past it. It returns false with an empty component once the path is
// exhausted; separators alone never produce components, so "/" has none and
// "a/b/" has exactly two.
func (p Remote) NextComponent(cursor *int) (string, bool) {
	i := *cursor
	for i < len(p.path) && p.path[i] == remoteSeparator {
		i++
	}
	if i >= len(p.path) {
		*cursor = i
		return "", false
	}
	j := i
	for j < len(p.path) && p.path[j] != remoteSeparator {
		j++
	}
	*cursor = j
	return p.path[i:j], true
}

// Components iterates the path's components front to back.
func (p Remote) Components() iter.Seq[string] {
	return func(yield func(string) bool) {
		var cursor int
		for {
			component, ok := p.NextComponent(&cursor)
			if !ok || !yield(component) {
				return
			}
		}
	}
}

// Append returns the path extended with one more component.
func (p Remote) Append(name string) Remote {
	next := p
	if p.path != "" && !strings.HasSuffix(p.path, string(remoteSeparator)) {
		next.path += string(remoteSeparator)
	}
	next.path += name
	return next
}
