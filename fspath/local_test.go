package fspath

import (
	"testing"

	"github.com/mtth/syncpath/fspolicy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAppendWithSeparator(t *testing.T) {
	sep := string(separator)

	t.Run("nothing added onto an empty receiver", func(t *testing.T) {
		got := FromRelative("").AppendWithSeparator(FromRelative("a"), false)
		assert.Equal(t, "a", got.ToPath(true))
	})

	t.Run("flag forces a separator onto an empty receiver", func(t *testing.T) {
		got := FromRelative("").AppendWithSeparator(FromRelative("a"), true)
		assert.Equal(t, sep+"a", got.ToPath(true))
	})

	t.Run("no separator when other starts with one", func(t *testing.T) {
		got := FromRelative("a").AppendWithSeparator(FromRelative(sep+"b"), true)
		assert.Equal(t, "a"+sep+"b", got.ToPath(true))
	})

	t.Run("no separator when the receiver ends with one", func(t *testing.T) {
		got := FromRelative("a"+sep).AppendWithSeparator(FromRelative("b"), true)
		assert.Equal(t, "a"+sep+"b", got.ToPath(true))
	})

	t.Run("separator between bare components", func(t *testing.T) {
		got := FromRelative("a").AppendWithSeparator(FromRelative("b"), true)
		assert.Equal(t, "a"+sep+"b", got.ToPath(true))
	})

	t.Run("separator inserted even without the flag", func(t *testing.T) {
		got := FromRelative("a").AppendWithSeparator(FromRelative("b"), false)
		assert.Equal(t, "a"+sep+"b", got.ToPath(true))
	})
}

func TestLocalPrependWithSeparator(t *testing.T) {
	sep := string(separator)

	t.Run("empty receiver yields other", func(t *testing.T) {
		got := FromRelative("").PrependWithSeparator(FromRelative("b"))
		assert.Equal(t, "b", got.ToPath(true))
	})

	t.Run("no separator when the receiver starts with one", func(t *testing.T) {
		got := FromRelative(sep + "a").PrependWithSeparator(FromRelative("b"))
		assert.Equal(t, "b"+sep+"a", got.ToPath(true))
	})

	t.Run("no separator when other ends with one", func(t *testing.T) {
		got := FromRelative("a").PrependWithSeparator(FromRelative("b" + sep))
		assert.Equal(t, "b"+sep+"a", got.ToPath(true))
	})

	t.Run("separator between bare components", func(t *testing.T) {
		got := FromRelative("a").PrependWithSeparator(FromRelative("b"))
		assert.Equal(t, "b"+sep+"a", got.ToPath(true))
	})
}

func TestLocalIsContainingPathOf(t *testing.T) {
	sep := string(separator)

	for _, tc := range []struct {
		name     string
		receiver string
		other    string
		want     bool
		pos      int
	}{
		{name: "diverging leaves", receiver: "a" + sep + "b", other: "a" + sep + "c"},
		{name: "string prefix only", receiver: "a", other: "ab"},
		{name: "component prefix", receiver: "a", other: "a" + sep + "b", want: true, pos: 2},
		{name: "receiver with trailing separator", receiver: "a" + sep, other: "a" + sep + "b", want: true, pos: 2},
		{name: "self", receiver: "a" + sep + "b", other: "a" + sep + "b", want: true, pos: 3},
		{name: "shorter other", receiver: "a" + sep + "b", other: "a"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pos, ok := FromRelative(tc.receiver).IsContainingPathOf(FromRelative(tc.other))
			assert.Equal(t, tc.want, ok)
			assert.Equal(t, tc.pos, pos)
		})
	}

	t.Run("case folding follows the platform", func(t *testing.T) {
		pos, ok := FromRelative("A").IsContainingPathOf(FromRelative("a" + sep + "b"))
		if caseInsensitivePaths {
			require.True(t, ok)
			assert.Equal(t, 2, pos)
		} else {
			assert.False(t, ok)
			assert.Zero(t, pos)
		}
	})
}

func TestFromRelativeName(t *testing.T) {
	pol := fspolicy.KindUnknown.Policy()

	p := FromRelativeName("a*b", pol)
	assert.Equal(t, "a%2Ab", p.ToPath(true))
	assert.Equal(t, "a*b", p.ToPath(false))
	assert.Equal(t, "a*b", p.ToName())
	assert.False(t, p.IsAbsolute())

	plain := FromRelativeName("plain", pol)
	assert.Equal(t, "plain", plain.ToPath(true))
}

func TestLocalToName(t *testing.T) {
	assert.Equal(t, "caf\u00e9", FromRelative("cafe\u0301").ToName())
	assert.Equal(t, "a*b", FromRelative("a%2Ab").ToName())
}

func TestLocalLeafAndParent(t *testing.T) {
	sep := string(separator)

	p := FromAbsolute(sep + "a" + sep + "b")
	assert.Equal(t, "b", p.LeafName().ToPath(true))
	parent := p.ParentPath()
	assert.Equal(t, sep+"a", parent.ToPath(true))
	assert.True(t, parent.IsAbsolute())
	assert.Equal(t, sep, parent.ParentPath().ToPath(true))

	bare := FromRelative("n")
	assert.Equal(t, "n", bare.LeafName().ToPath(true))
	assert.True(t, bare.ParentPath().IsEmpty())
}

func TestLocalAbsoluteTag(t *testing.T) {
	sep := string(separator)
	root := FromAbsolute(sep + "root")

	joined := root.AppendWithSeparator(FromRelative("leaf"), false)
	assert.True(t, joined.IsAbsolute())
	assert.Equal(t, sep+"root"+sep+"leaf", joined.ToPath(true))

	prefixed := FromRelative("leaf").PrependWithSeparator(root)
	assert.True(t, prefixed.IsAbsolute())
	assert.Equal(t, sep+"root"+sep+"leaf", prefixed.ToPath(true))
}

func TestLocalAppend(t *testing.T) {
	got := FromRelative("name").Append(FromRelative(".bak"))
	assert.Equal(t, "name.bak", got.ToPath(true))
}

func TestLongPathPrefixSize(t *testing.T) {
	assert.Equal(t, 4, longPathPrefixSize(`\\?\C:\x`))
	assert.Equal(t, 4, longPathPrefixSize(`\\.\C:\x`))
	assert.Zero(t, longPathPrefixSize(`\\?\UNC\host\share`))
	assert.Zero(t, longPathPrefixSize(`C:\x`))
	assert.Zero(t, longPathPrefixSize("/usr/bin"))
}
