package atmost

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	sum := func(ctx context.Context, acc, n int) (int, error) { return acc + n, nil }

	t.Run("fold result is limit-independent", func(t *testing.T) {
		for _, limit := range []int{1, 2, 3, 4, 0} {
			got, err := Reduce(context.Background(), []int{1, 2, 3, 4}, 0, sum, WithLimit(limit))
			require.NoError(t, err, "limit=%d", limit)
			assert.Equal(t, 10, got, "limit=%d", limit)
		}
	})

	t.Run("folds strictly in input order", func(t *testing.T) {
		// Concatenation is order-sensitive, so any claim/fold
		// interleaving bug shows up as a scrambled string.
		concat := func(ctx context.Context, acc, s string) (string, error) { return acc + s, nil }
		got, err := Reduce(context.Background(), []string{"a", "b", "c", "d", "e"}, "", concat, WithLimit(3))
		require.NoError(t, err)
		assert.Equal(t, "abcde", got)
	})

	t.Run("empty input returns the seed", func(t *testing.T) {
		got, err := Reduce(context.Background(), nil, 42, sum)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("failure discards the partial fold", func(t *testing.T) {
		boom := errors.New("boom")
		got, err := Reduce(context.Background(), []int{1, 2, 3}, 0, func(ctx context.Context, acc, n int) (int, error) {
			if n == 2 {
				return 0, boom
			}
			return acc + n, nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, got)
	})

	t.Run("failure stops further folds", func(t *testing.T) {
		visited := 0 // fold steps are serialized, no mutex needed
		_, err := Reduce(context.Background(), []int{1, 2, 3, 4, 5}, 0, func(ctx context.Context, acc, n int) (int, error) {
			visited++
			if n == 2 {
				return 0, errors.New("boom")
			}
			return acc + n, nil
		}, WithLimit(1))
		require.Error(t, err)
		assert.Equal(t, 2, visited, "draining must stop claims after the failing fold")
	})
}
