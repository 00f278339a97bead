// Package accum_test contains tests for the accum package.
package accum_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/opcount/accum"
	"github.com/rise-and-shine/opcount/counter"
	"github.com/rise-and-shine/opcount/wrap"
)

func add(a, b int) int { return a + b }

func TestFold(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		opts    []accum.Option[int]
		want    int
		wantErr error
	}{
		{
			name:  "folds left to right",
			input: []int{1, 2, 3, 4},
			want:  10,
		},
		{
			name:  "single element needs no combine",
			input: []int{7},
			want:  7,
		},
		{
			name:  "initial seeds the whole sequence",
			input: []int{1, 2, 3},
			opts:  []accum.Option[int]{accum.WithInitial(10)},
			want:  16,
		},
		{
			name:  "empty with initial returns initial",
			input: nil,
			opts:  []accum.Option[int]{accum.WithInitial(10)},
			want:  10,
		},
		{
			name:  "empty with default returns default",
			input: nil,
			opts:  []accum.Option[int]{accum.WithDefault(2)},
			want:  2,
		},
		{
			name: "initial wins over default on empty input",
			opts: []accum.Option[int]{
				accum.WithInitial(10),
				accum.WithDefault(2),
			},
			want: 10,
		},
		{
			name:    "empty without initial or default fails",
			input:   nil,
			wantErr: accum.ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accum.Fold(slices.Values(tt.input), add, tt.opts...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFoldIsLeftAssociative(t *testing.T) {
	got, err := accum.Fold(slices.Values([]int{100, 10, 3}), func(a, b int) int { return a - b })

	require.NoError(t, err)
	assert.Equal(t, 87, got)
}

// wrapAll wraps each value onto a fresh shared ledger.
func wrapAll(c *counter.Counter, vs ...int) []*wrap.Value[int] {
	ws := make([]*wrap.Value[int], len(vs))
	for i, v := range vs {
		ws[i] = wrap.Wrap(v, wrap.WithCounter[int](c))
	}
	return ws
}

func TestSumCountsNoIdentityOperation(t *testing.T) {
	c := counter.New()
	ws := wrapAll(c, 1, 2, 3, 4)

	total, err := accum.Sum(slices.Values(ws))

	require.NoError(t, err)
	assert.Equal(t, 10, total.Held())
	// Four elements, three additions: the first element seeds, no +0.
	assert.Equal(t, counter.Tally{counter.OpAdd: 3}, c.Snapshot())
}

func TestSumEmpty(t *testing.T) {
	_, err := accum.Sum(slices.Values[[]*wrap.Value[int]](nil))
	assert.ErrorIs(t, err, accum.ErrEmpty)

	total, err := accum.Sum(
		slices.Values[[]*wrap.Value[int]](nil),
		accum.WithDefault(wrap.Wrap(2)),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, total.Held())
}

func TestSumWithInitial(t *testing.T) {
	c := counter.New()
	ws := wrapAll(c, 1, 2, 3)

	total, err := accum.Sum(
		slices.Values(ws),
		accum.WithInitial(wrap.Wrap(10, wrap.WithCounter[int](c))),
	)

	require.NoError(t, err)
	assert.Equal(t, 16, total.Held())
	// The initial value is combined with every element.
	assert.Equal(t, counter.Tally{counter.OpAdd: 3}, c.Snapshot())
}

func TestProd(t *testing.T) {
	c := counter.New()
	ws := wrapAll(c, 2, 3, 4)

	total, err := accum.Prod(slices.Values(ws))

	require.NoError(t, err)
	assert.Equal(t, 24, total.Held())
	assert.Equal(t, counter.Tally{counter.OpMul: 2}, c.Snapshot())
}

func TestProdEmpty(t *testing.T) {
	_, err := accum.Prod(slices.Values[[]*wrap.Value[int]](nil))
	assert.ErrorIs(t, err, accum.ErrEmpty)

	total, err := accum.Prod(
		slices.Values[[]*wrap.Value[int]](nil),
		accum.WithDefault(wrap.Wrap(1)),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, total.Held())
}

// Prod is not numeric-only: any type with a Mul capability folds.
func TestProdCustomMultipliableType(t *testing.T) {
	c := counter.New()
	ops := wrap.Ops[string]{
		Mul: func(a, b string) string { return a + b },
	}
	ws := []*wrap.Value[string]{
		wrap.WrapOps("ab", ops, wrap.WithCounter[string](c)),
		wrap.WrapOps("cd", ops, wrap.WithCounter[string](c)),
		wrap.WrapOps("ef", ops, wrap.WithCounter[string](c)),
	}

	total, err := accum.Prod(slices.Values(ws))

	require.NoError(t, err)
	assert.Equal(t, "abcdef", total.Held())
	assert.Equal(t, 2, c.Get(counter.OpMul))
}

func TestSumProdStopsAtShorterSequence(t *testing.T) {
	c := counter.New()
	a := wrapAll(c, 1, 2, 3, 4)
	b := wrapAll(c, 5, 6, 7, 8, 9)

	total, err := accum.SumProd(slices.Values(a), slices.Values(b))

	require.NoError(t, err)
	// 1*5 + 2*6 + 3*7 + 4*8; the ninth element never pairs.
	assert.Equal(t, 70, total.Held())
	assert.Equal(t, counter.Tally{
		counter.OpMul: 4,
		counter.OpAdd: 3,
	}, c.Snapshot())
}

func TestSumProdEmpty(t *testing.T) {
	c := counter.New()
	b := wrapAll(c, 5, 6)

	_, err := accum.SumProd(slices.Values[[]*wrap.Value[int]](nil), slices.Values(b))
	assert.ErrorIs(t, err, accum.ErrEmpty)

	total, err := accum.SumProd(
		slices.Values[[]*wrap.Value[int]](nil),
		slices.Values(b),
		accum.WithDefault(wrap.Wrap(2)),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, total.Held())
}

func TestHelpersDoNoCountingOfTheirOwn(t *testing.T) {
	tally := counter.Measure(func() {
		got, err := accum.Fold(slices.Values([]int{1, 2, 3}), add)
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	assert.Empty(t, tally)
}
