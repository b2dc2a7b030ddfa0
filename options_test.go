package atmost

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLimit(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		n    int
		want int
	}{
		{"unset means unbounded", nil, 5, 5},
		{"zero means unbounded", []Option{WithLimit(0)}, 5, 5},
		{"explicit limit", []Option{WithLimit(3)}, 5, 3},
		{"limit clamped to input length", []Option{WithLimit(10)}, 5, 5},
		{"floor of one", nil, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newCallConfig(tt.opts)
			assert.Equal(t, tt.want, cfg.resolveLimit(tt.n))
		})
	}
}

func TestWithLimitNegativePanics(t *testing.T) {
	assert.Panics(t, func() { WithLimit(-1) })
}

func TestDefaults(t *testing.T) {
	t.Run("limit is readable", func(t *testing.T) {
		assert.Equal(t, 8, NewDefaults(WithLimit(8)).Limit())
		assert.Equal(t, 0, NewDefaults().Limit())
	})

	t.Run("bundle supplies the limit", func(t *testing.T) {
		d := NewDefaults(WithLimit(2))

		var g gauge
		err := Each(context.Background(), make([]struct{}, 8), func(ctx context.Context, _ struct{}) error {
			g.enter()
			defer g.exit()
			time.Sleep(3 * time.Millisecond)
			return nil
		}, WithDefaults(d))
		require.NoError(t, err)
		assert.LessOrEqual(t, g.max.Load(), int32(2))
	})

	t.Run("per-call limit beats the bundle in either order", func(t *testing.T) {
		d := NewDefaults(WithLimit(1))

		for _, opts := range [][]Option{
			{WithDefaults(d), WithLimit(4)},
			{WithLimit(4), WithDefaults(d)},
		} {
			cfg := newCallConfig(opts)
			assert.Equal(t, 4, cfg.resolveLimit(10))
		}
	})

	t.Run("bundle hooks apply when the call sets none", func(t *testing.T) {
		settled := 0
		d := NewDefaults(WithOnSettle(func(err error, _ time.Duration) { settled++ }))

		err := Each(context.Background(), []int{1, 2}, func(ctx context.Context, n int) error {
			return nil
		}, WithDefaults(d))
		require.NoError(t, err)
		assert.Equal(t, 1, settled)
	})
}
