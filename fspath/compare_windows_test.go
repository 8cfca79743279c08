//go:build windows

package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareUTFSkipsLongPathPrefixes(t *testing.T) {
	assert.Zero(t, CompareUTF(FromAbsolute(`\\?\C:\`), false, FromAbsolute(`C:\`), false, true))
	assert.Zero(t, CompareUTF(FromAbsolute(`\\.\C:\`), false, `C:\`, false, true))

	// Only absolute paths carry the marker; relative text keeps its bytes.
	assert.NotZero(t, CompareUTF(FromRelative(`\\?\C:\`), false, FromRelative(`C:\`), false, true))
}
