// Package fsaccess specifies the contracts between the path layer and the
// code that actually touches the disk. It performs no I/O itself.
package fsaccess

import (
	"errors"
	"syscall"

	"github.com/mtth/syncpath/fspath"
)

// ErrNameTooLong classifies failures caused by a component exceeding the
// filesystem's length limit.
var ErrNameTooLong = errors.New("name too long")

// IsNameTooLong reports whether err was caused by an over-long name, either
// tagged with ErrNameTooLong or carrying the platform errno.
func IsNameTooLong(err error) bool {
	return errors.Is(err, ErrNameTooLong) || errors.Is(err, syscall.ENAMETOOLONG)
}

// Signal is the sticky too-long-name indicator an accessor carries. It is
// only meaningful immediately after a failed operation: a too-long failure
// raises it and any later failure of a different kind clears it, so stale
// state never taints an unrelated error. Successful operations leave it
// alone.
type Signal struct {
	raised bool
}

// Observe records the outcome of a mutating operation.
func (s *Signal) Observe(err error) {
	if err != nil {
		s.raised = IsNameTooLong(err)
	}
}

// Raised reports whether the last failure was a too-long name.
func (s *Signal) Raised() bool {
	return s.raised
}

// Clear resets the signal.
func (s *Signal) Clear() {
	s.raised = false
}

// Access is the mutating surface a sync engine needs from the local
// filesystem. Implementations route every outcome through a Signal so that
// TargetNameTooLong honors the Observe contract above.
type Access interface {
	// CopyLocal copies the file at src to dst, replacing any existing file.
	CopyLocal(src, dst fspath.Local) error
	// RenameLocal moves src to dst. With replaceExisting false the operation
	// fails when dst already exists.
	RenameLocal(src, dst fspath.Local, replaceExisting bool) error
	// MkdirLocal creates the folder at path; parents must already exist.
	MkdirLocal(path fspath.Local) error
	// TargetNameTooLong reports whether the last failure was caused by an
	// over-long component.
	TargetNameTooLong() bool
}
