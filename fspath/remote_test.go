package fspath

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteNextComponent(t *testing.T) {
	for _, tc := range []struct {
		path string
		want []string
	}{
		{path: "/a/b/", want: []string{"a", "b"}},
		{path: "a/b/", want: []string{"a", "b"}},
		{path: "/a/b", want: []string{"a", "b"}},
		{path: "/"},
		{path: ""},
	} {
		t.Run(fmt.Sprintf("%q", tc.path), func(t *testing.T) {
			p := NewRemote(tc.path)
			var cursor int
			var got []string
			for {
				component, ok := p.NextComponent(&cursor)
				if !ok {
					assert.Empty(t, component)
					break
				}
				got = append(got, component)
			}
			assert.Equal(t, tc.want, got)

			component, ok := p.NextComponent(&cursor)
			assert.False(t, ok)
			assert.Empty(t, component)
		})
	}
}

func TestRemoteComponents(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "z"}, slices.Collect(NewRemote("/x/y/z").Components()))

	var count int
	for range NewRemote("/a/b").Components() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestRemoteAppend(t *testing.T) {
	p := NewRemote("/a")
	assert.Equal(t, "/a/b", p.Append("b").String())
	assert.Equal(t, "/a/b", NewRemote("/a/").Append("b").String())
	assert.Equal(t, "b", NewRemote("").Append("b").String())
	assert.True(t, p.Append("b").IsAbsolute())
}

func TestNewRemote(t *testing.T) {
	assert.True(t, NewRemote("/a").IsAbsolute())
	assert.False(t, NewRemote("a").IsAbsolute())
	assert.True(t, NewRemote("").IsEmpty())
	assert.Equal(t, "/a", NewRemote("/a").String())
}
