//go:build !windows

package fspath

const (
	separator            byte = '/'
	caseInsensitivePaths      = false
)

// compareStart returns the offset at which comparison of the path begins.
func (p Local) compareStart() int {
	return 0
}
