// SPDX-License-Identifier: MIT
package dsu_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/dsu"
)

func TestDisjointSet_Singletons(t *testing.T) {
	d := dsu.New("a", "b", "c", "a")

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.Sets())
	for _, x := range []string{"a", "b", "c"} {
		assert.Equal(t, x, d.Find(x))
		assert.Equal(t, 1, d.SetSize(x))
	}
	assert.False(t, d.Connected("a", "b"))
}

func TestDisjointSet_UnionBySize(t *testing.T) {
	d := dsu.New("a", "b", "c", "d")

	require.True(t, d.Union("a", "b"))
	require.False(t, d.Union("b", "a"), "already joined")
	assert.Equal(t, 3, d.Sets())
	assert.Equal(t, 2, d.SetSize("b"))

	// c is a singleton: it must hang under the larger {a,b} root.
	root := d.Find("a")
	require.True(t, d.Union("c", "a"))
	assert.Equal(t, root, d.Find("c"))
	assert.Equal(t, 3, d.SetSize("c"))

	assert.True(t, d.Connected("b", "c"))
	assert.False(t, d.Connected("a", "d"))
	assert.Equal(t, 2, d.Sets())
}

func TestDisjointSet_AutoAdd(t *testing.T) {
	d := dsu.New()
	assert.False(t, d.Has("x"))
	assert.Equal(t, "x", d.Find("x"))
	assert.True(t, d.Has("x"))
	assert.Equal(t, 1, d.Sets())

	d.Add("x")
	assert.Equal(t, 1, d.Len())
}

func TestDisjointSet_LongChainCompresses(t *testing.T) {
	const n = 1000
	d := dsu.New()
	for i := 1; i < n; i++ {
		d.Union(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i))
	}
	assert.Equal(t, 1, d.Sets())
	assert.Equal(t, n, d.SetSize("v0"))

	root := d.Find("v0")
	for i := 0; i < n; i++ {
		require.Equal(t, root, d.Find(fmt.Sprintf("v%d", i)))
	}
}
