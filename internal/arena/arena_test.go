package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternReturnsCanonicalString(t *testing.T) {
	a := New()
	x := a.Intern("hello")
	y := a.Intern("hello")
	require.Equal(t, x, y)

	stats := a.Stats()
	require.Equal(t, 1, stats.InternedKeys)

	a.Intern("world")
	require.Equal(t, 2, a.Stats().InternedKeys)
}

func TestNewNodeTracksCountAndSlabGrowth(t *testing.T) {
	a := New()
	for i := 0; i < slabSize+10; i++ {
		a.NewNode(i)
	}
	stats := a.Stats()
	require.Equal(t, slabSize+10, stats.Nodes)
	require.Equal(t, 2, stats.Slabs)
}
