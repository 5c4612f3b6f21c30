package keylist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortByKey(t *testing.T) {
	t.Run("sorts by key leaving input untouched", func(t *testing.T) {
		pairs := List[string, int]{
			{Key: "c", Value: 3},
			{Key: "a", Value: 1},
			{Key: "b", Value: 2},
		}
		got := SortByKey(pairs)
		require.Equal(t, List[string, int]{
			{Key: "a", Value: 1},
			{Key: "b", Value: 2},
			{Key: "c", Value: 3},
		}, got)
		require.Equal(t, "c", pairs[0].Key)
	})

	t.Run("stable for duplicate keys", func(t *testing.T) {
		pairs := List[string, int]{
			{Key: "b", Value: 1},
			{Key: "a", Value: 2},
			{Key: "b", Value: 3},
		}
		got := SortByKey(pairs)
		require.Equal(t, List[string, int]{
			{Key: "a", Value: 2},
			{Key: "b", Value: 1},
			{Key: "b", Value: 3},
		}, got)
	})

	t.Run("integer keys", func(t *testing.T) {
		pairs := List[int, string]{
			{Key: 3, Value: "three"},
			{Key: 1, Value: "one"},
		}
		got := SortByKey(pairs)
		require.Equal(t, 1, got[0].Key)
		require.Equal(t, 3, got[1].Key)
	})
}
