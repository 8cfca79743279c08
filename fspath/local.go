// Package fspath carries the two path representations a sync engine moves
// names between: Local, machine-dependent text as stored on disk, and
// Remote, the slash-delimited namespace on the other side. It also houses
// the escape-aware comparator that orders any mix of the two.
package fspath

import (
	"strings"

	"github.com/mtth/syncpath/escape"
	"github.com/mtth/syncpath/fspolicy"
)

// Local is a machine-dependent path representation. Its text is opaque: it
// may contain escapes produced by FromRelativeName and is never validated,
// so gibberish read back from disk round-trips unharmed. Operations return
// new values; Local is copied, not mutated.
type Local struct {
	path     string
	absolute bool
}

// FromAbsolute wraps path, which is assumed to be rooted native text.
func FromAbsolute(path string) Local {
	return Local{path: path, absolute: true}
}

// FromRelative wraps path without touching its text.
func FromRelative(path string) Local {
	return Local{path: path}
}

// FromRelativeName stores a single logical component, escaping whatever the
// policy forbids so that the result is storable on that filesystem and
// decodes back to name.
func FromRelativeName(name string, pol fspolicy.Policy) Local {
	return Local{path: escape.Encode(name, pol.IsIncompatible)}
}

// IsAbsolute reports whether the path was built from rooted text.
func (p Local) IsAbsolute() bool {
	return p.absolute
}

// IsEmpty reports whether the path holds no text.
func (p Local) IsEmpty() bool {
	return p.path == ""
}

// String returns the native text with escapes kept.
func (p Local) String() string {
	return p.path
}

// ToPath renders the stored native text, decoding escapes unless asked to
// keep them.
func (p Local) ToPath(keepEscapes bool) string {
	if keepEscapes {
		return p.path
	}
	return escape.Decode(p.path)
}

// ToName renders the text as a logical name: escapes decoded, composition
// normalized. This is the form the remote side of a sync sees.
func (p Local) ToName() string {
	return escape.Normalize(escape.Decode(p.path))
}

// Append returns the receiver with other's text concatenated as-is. Use it
// for suffixes; joining components is AppendWithSeparator's job.
func (p Local) Append(other Local) Local {
	return Local{path: p.path + other.path, absolute: p.absolute}
}

// AppendWithSeparator returns the receiver extended with other, inserting
// the native separator when the receiver is non-empty and neither side
// already provides one at the boundary. alwaysAddSeparator additionally
// inserts one for an empty receiver; it never produces a duplicate when a
// boundary separator exists on either side.
func (p Local) AppendWithSeparator(other Local, alwaysAddSeparator bool) Local {
	next := p
	if (alwaysAddSeparator || !p.IsEmpty()) && !p.endsInSeparator() && !other.beginsWithSeparator() {
		next.path += string(separator)
	}
	next.path += other.path
	return next
}

// PrependWithSeparator returns other joined in front of the receiver under
// the same separator rule. An empty receiver yields exactly other.
func (p Local) PrependWithSeparator(other Local) Local {
	if p.IsEmpty() {
		return other
	}
	next := Local{path: other.path, absolute: other.absolute}
	if !p.beginsWithSeparator() && !other.endsInSeparator() {
		next.path += string(separator)
	}
	next.path += p.path
	return next
}

// IsContainingPathOf reports whether the receiver is a component-wise prefix
// of other: other equals the receiver or begins with it followed by a
// separator. "a" contains "a/b" and itself but not "ab". The offset points
// just past the matched prefix and its boundary separator in other; it is 0
// when ok is false. Matching folds case on platforms whose filesystems do.
func (p Local) IsContainingPathOf(other Local) (int, bool) {
	n := len(p.path)
	if len(other.path) < n || !prefixMatches(other.path[:n], p.path) {
		return 0, false
	}
	switch {
	case len(other.path) == n:
		return n, true
	case p.endsInSeparator():
		return n, true
	case other.path[n] == separator:
		return n + 1, true
	}
	return 0, false
}

// LeafName returns the path's last component.
func (p Local) LeafName() Local {
	i := strings.LastIndexByte(p.path, separator)
	if i < 0 {
		return Local{path: p.path}
	}
	return Local{path: p.path[i+1:]}
}

// ParentPath returns everything before the last separator, keeping the
// receiver's absolute tag. The parent of a bare name is empty.
func (p Local) ParentPath() Local {
	i := strings.LastIndexByte(p.path, separator)
	switch {
	case i < 0:
		return Local{absolute: p.absolute}
	case i == 0:
		return Local{path: p.path[:1], absolute: p.absolute}
	}
	return Local{path: p.path[:i], absolute: p.absolute}
}

func (p Local) endsInSeparator() bool {
	return p.path != "" && p.path[len(p.path)-1] == separator
}

func (p Local) beginsWithSeparator() bool {
	return p.path != "" && p.path[0] == separator
}

func prefixMatches(text, prefix string) bool {
	if caseInsensitivePaths {
		return strings.EqualFold(text, prefix)
	}
	return text == prefix
}
