package fspath

import "strings"

// Long-path markers. Absolute paths spelled \\?\C:\x and C:\x name the same
// location, so comparison skips the marker. The UNC form is kept whole:
// stripping it would leave text that no longer names the same root.
const (
	longPathPrefix    = `\\?\`
	devicePathPrefix  = `\\.\`
	uncLongPathPrefix = `\\?\UNC\`
)

func longPathPrefixSize(path string) int {
	if strings.HasPrefix(path, uncLongPathPrefix) {
		return 0
	}
	if strings.HasPrefix(path, longPathPrefix) || strings.HasPrefix(path, devicePathPrefix) {
		return len(longPathPrefix)
	}
	return 0
}
