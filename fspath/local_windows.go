//go:build windows

package fspath

const (
	separator            byte = '\\'
	caseInsensitivePaths      = true
)

// compareStart returns the offset at which comparison of the path begins,
// past any long-path prefix of absolute paths.
func (p Local) compareStart() int {
	if !p.absolute {
		return 0
	}
	return longPathPrefixSize(p.path)
}
