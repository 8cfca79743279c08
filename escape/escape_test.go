package escape

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isIncompatible(c byte) bool {
	return strings.IndexByte("\\/:?\"<>|*", c) >= 0
}

func TestEncode(t *testing.T) {
	t.Run("escapes incompatible characters", func(t *testing.T) {
		name := "\\/:?\"<>|*"
		var want strings.Builder
		for i := 0; i < len(name); i++ {
			fmt.Fprintf(&want, "%%%02X", name[i])
		}
		assert.Equal(t, want.String(), Encode(name, isIncompatible))
	})

	t.Run("keeps compatible characters", func(t *testing.T) {
		assert.Equal(t, "100% safe", Encode("100% safe", isIncompatible))
	})

	t.Run("uppercase hex digits", func(t *testing.T) {
		assert.Equal(t, "%5C", Encode(`\`, isIncompatible))
	})
}

func TestDecode(t *testing.T) {
	t.Run("round trips escaped names", func(t *testing.T) {
		name := "%\\/:?\"<>|*"
		assert.Equal(t, name, Decode(Encode(name, isIncompatible)))
	})

	t.Run("accepts either hex case", func(t *testing.T) {
		assert.Equal(t, `\\`, Decode("%5c%5C"))
	})

	t.Run("keeps control bytes escaped", func(t *testing.T) {
		ctl := func(c byte) bool { return c < 0x20 || isIncompatible(c) }
		escaped := Encode("a\x07b", ctl)
		assert.Equal(t, "a%07b", escaped)
		assert.Equal(t, "a%07b", Decode(escaped))
	})

	t.Run("keeps malformed escapes verbatim", func(t *testing.T) {
		for _, name := range []string{"a%", "a%a", "a%qb", "a%bq", "%"} {
			assert.Equal(t, name, Decode(name), "name %q", name)
		}
	})

	t.Run("resumes after literal percent", func(t *testing.T) {
		assert.Equal(t, "%A", Decode("%%41"))
	})
}

func TestDecodeURL(t *testing.T) {
	t.Run("decodes either hex case", func(t *testing.T) {
		assert.Equal(t, "aJKc", DecodeURL("a%4a%4Bc"))
	})

	t.Run("decodes control bytes", func(t *testing.T) {
		assert.Equal(t, "a\x07b", DecodeURL("a%07b"))
	})

	t.Run("keeps malformed escapes verbatim", func(t *testing.T) {
		for _, s := range []string{"a%qbc", "a%bqc", "a%", "a%a"} {
			assert.Equal(t, s, DecodeURL(s), "input %q", s)
		}
	})
}

func TestHexVal(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		v, ok := HexVal(c)
		require.True(t, ok)
		assert.Equal(t, c-'0', v)
	}
	for c := byte('A'); c <= 'F'; c++ {
		v, ok := HexVal(c)
		require.True(t, ok)
		assert.Equal(t, c-'A'+10, v)
	}
	for c := byte('a'); c <= 'f'; c++ {
		v, ok := HexVal(c)
		require.True(t, ok)
		assert.Equal(t, c-'a'+10, v)
	}
	for _, c := range []byte{'q', '%', ' ', 'G', '/'} {
		_, ok := HexVal(c)
		assert.False(t, ok, "digit %q", c)
	}
}

func TestNormalize(t *testing.T) {
	t.Run("composes decomposed input", func(t *testing.T) {
		assert.Equal(t, "café", Normalize("café"))
	})

	t.Run("leaves composed input alone", func(t *testing.T) {
		assert.Equal(t, "café", Normalize("café"))
	})

	t.Run("ascii", func(t *testing.T) {
		assert.Equal(t, "plain", Normalize("plain"))
	})
}
