package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("finding a present item", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]string{"a", "b", "c"}, "b"))
	})

	t.Run("missing item", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	})
}

func TestFirstDuplicate(t *testing.T) {
	t.Run("reporting the first repeated value", func(t *testing.T) {
		got, ok := FirstDuplicate([]int{3, 1, 2, 1, 3})
		require.True(t, ok)
		require.Equal(t, 1, got, "1 repeats before 3 does")
	})

	t.Run("no duplicates", func(t *testing.T) {
		_, ok := FirstDuplicate([]string{"x", "y"})
		require.False(t, ok)
	})
}

func TestSameSet(t *testing.T) {
	require.True(t, SameSet([]int{1, 2, 3}, []int{3, 1, 2}), "Order should not matter")
	require.False(t, SameSet([]int{1, 2}, []int{1, 2, 3}), "Sizes differ")
	require.False(t, SameSet([]int{1, 2}, []int{1, 4}), "Values differ")
	require.True(t, SameSet([]int{}, []int{}), "Empty sets are equal")
}
