// Package fspolicy describes what a target filesystem tolerates in names:
// which bytes must be escaped, which names are reserved, whether lookups fold
// case, and how long a single component may be.
package fspolicy

import (
	"maps"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix Kind -transform lower

// Kind identifies a filesystem family with known naming rules. KindUnknown
// carries the most restrictive escaping policy so that names prepared for it
// are storable anywhere.
type Kind int

const (
	KindUnknown Kind = iota
	KindExt
	KindXFS
	KindAPFS
	KindHFS
	KindFAT32
	KindExFAT
	KindNTFS
	KindCIFS
	KindSMB
)

// NodeKind distinguishes files from folders where naming rules differ.
type NodeKind int

const (
	NodeFile NodeKind = iota
	NodeFolder
)

func (k NodeKind) String() string {
	if k == NodeFolder {
		return "folder"
	}
	return "file"
}

// fullForbidden is the strictest incompatible set. '%' stays out of it so
// already-escaped text survives another escaping pass.
const fullForbidden = "\\/:?\"<>|*"

// reservedDeviceNames are matched case-insensitively against whole names.
var reservedDeviceNames = []string{
	"AUX", "COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8",
	"COM9", "CON", "LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7",
	"LPT8", "LPT9", "NUL", "PRN",
}

// Policy is one filesystem's naming rules. The zero value allows everything.
type Policy struct {
	// Forbidden holds the bytes that must be escaped in stored names.
	Forbidden string
	// Controls requires escaping bytes below 0x20.
	Controls bool
	// CaseInsensitive marks filesystems whose lookups fold case.
	CaseInsensitive bool
	// Reserved lists device names the filesystem refuses. An empty list
	// disables reserved-name semantics, trailing-dot rule included.
	Reserved []string
	// MaxComponentLength caps a single name's byte length, 0 when unknown.
	MaxComponentLength int
}

// Table maps filesystem kinds to the policy applied to each.
type Table map[Kind]Policy

var defaultTable = Table{
	KindUnknown: {Forbidden: fullForbidden, Controls: true, CaseInsensitive: true, Reserved: reservedDeviceNames},
	KindExt:     {Forbidden: "/", MaxComponentLength: 255},
	KindXFS:     {Forbidden: "/", MaxComponentLength: 255},
	KindAPFS:    {Forbidden: "/:", CaseInsensitive: true, MaxComponentLength: 255},
	KindHFS:     {Forbidden: "/:", CaseInsensitive: true, MaxComponentLength: 255},
	KindFAT32:   {Forbidden: fullForbidden, Controls: true, CaseInsensitive: true, Reserved: reservedDeviceNames, MaxComponentLength: 255},
	KindExFAT:   {Forbidden: fullForbidden, Controls: true, CaseInsensitive: true, Reserved: reservedDeviceNames, MaxComponentLength: 255},
	KindNTFS:    {Forbidden: fullForbidden, Controls: true, CaseInsensitive: true, Reserved: reservedDeviceNames, MaxComponentLength: 255},
	KindCIFS:    {Forbidden: fullForbidden, Controls: true, CaseInsensitive: true, Reserved: reservedDeviceNames, MaxComponentLength: 255},
	KindSMB:     {Forbidden: fullForbidden, Controls: true, CaseInsensitive: true, Reserved: reservedDeviceNames, MaxComponentLength: 255},
}

// DefaultTable returns a fresh copy of the built-in per-kind policies.
func DefaultTable() Table {
	return maps.Clone(defaultTable)
}

// Policy returns k's default naming rules.
func (k Kind) Policy() Policy {
	return defaultTable[k]
}

// IsIncompatible reports whether c may not appear verbatim in a name bound
// for this filesystem. It satisfies escape.Predicate.
func (p Policy) IsIncompatible(c byte) bool {
	return strings.IndexByte(p.Forbidden, c) >= 0 || (p.Controls && c < 0x20)
}

// IsReservedName reports whether name cannot be given to a node of the given
// kind. Folder names additionally may not end in a single trailing dot.
func (p Policy) IsReservedName(name string, node NodeKind) bool {
	if len(p.Reserved) == 0 {
		return false
	}
	if node == NodeFolder && strings.HasSuffix(name, ".") && !strings.HasSuffix(name, "..") {
		return true
	}
	for _, r := range p.Reserved {
		if strings.EqualFold(name, r) {
			return true
		}
	}
	return false
}

// ExceedsNameLimit reports whether name is longer than the filesystem allows
// for a single component.
func (p Policy) ExceedsNameLimit(name string) bool {
	return p.MaxComponentLength > 0 && len(name) > p.MaxComponentLength
}
