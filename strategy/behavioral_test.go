package strategy

import (
	"math/big"
	"testing"

	"signaling/game"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func r(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

func exampleBehavioral(t *testing.T) *Behavioral[int, int] {
	t.Helper()
	b, err := NewBehavioral(NewTable[int, int]().
		Put(1, 1, r(1, 10)).
		Put(1, 2, r(9, 10)).
		Put(2, 1, r(2, 10)).
		Put(2, 2, r(8, 10)))
	require.NoError(t, err)
	return b
}

// pmf flattens a distribution for comparison.
func pmf[C comparable](d game.Distribution[C]) map[C]string {
	out := map[C]string{}
	d.Each(func(c C, p *big.Rat) {
		out[c] = p.RatString()
	})
	return out
}

func TestNewBehavioral(t *testing.T) {
	tests := map[string]*Table[int, int]{
		"nil table":   nil,
		"empty table": NewTable[int, int](),
		"missing columns in first row": NewTable[int, int]().
			Put(1, 1, r(1, 1)).
			Put(2, 1, r(1, 2)).
			Put(2, 2, r(1, 2)),
		"missing columns in second row": NewTable[int, int]().
			Put(1, 1, r(1, 2)).
			Put(1, 2, r(1, 2)).
			Put(2, 1, r(1, 1)),
		"row below one": NewTable[int, int]().
			Put(1, 1, r(1, 2)),
		"row above one": NewTable[int, int]().
			Put(1, 1, r(1, 2)).
			Put(1, 2, r(5001, 10000)),
		"second row above one": NewTable[int, int]().
			Put(1, 1, r(1, 2)).
			Put(1, 2, r(1, 2)).
			Put(2, 1, r(1, 2)).
			Put(2, 2, r(5001, 10000)),
		"negative probability": NewTable[int, int]().
			Put(1, 1, r(-1, 2)).
			Put(1, 2, r(3, 2)),
		"missing probability": NewTable[int, int]().
			Put(1, 1, nil).
			Put(1, 2, r(1, 1)),
		"more probabilities than choices": NewTable[int, int]().
			PutRow(1, []int{1, 2}, []*big.Rat{r(1, 1), r(0, 1), r(5, 1)}),
		"fewer probabilities than choices": NewTable[int, int]().
			PutRow(1, []int{1, 2}, []*big.Rat{r(1, 1)}),
		"mismatched row after a good one": NewTable[int, int]().
			PutRow(1, []int{1, 2}, []*big.Rat{r(1, 2), r(1, 2)}).
			PutRow(2, []int{1, 2}, []*big.Rat{r(1, 2), r(1, 2), r(0, 1)}),
	}
	for name, table := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewBehavioral(table)
			require.ErrorIs(t, err, game.ErrInvalidArgument)
		})
	}

	t.Run("rows may list choices in different orders", func(t *testing.T) {
		b, err := NewBehavioral(NewTable[string, string]().
			PutRow("M1", []string{"C1", "C2"}, []*big.Rat{r(1, 3), r(2, 3)}).
			PutRow("M2", []string{"C2", "C1"}, []*big.Rat{r(1, 7), r(6, 7)}))
		require.NoError(t, err)
		require.Equal(t, []string{"C1", "C2"}, b.Choices())
		require.Equal(t, []string{"M1", "M2"}, b.Domain())
	})
}

func TestBehavioralExpectedPlay(t *testing.T) {
	b := exampleBehavioral(t)

	t.Run("unknown information", func(t *testing.T) {
		_, err := b.ExpectedPlay(-1)
		require.ErrorIs(t, err, game.ErrNotFound)
	})

	t.Run("returns the declared rows", func(t *testing.T) {
		first, err := b.ExpectedPlay(1)
		require.NoError(t, err)
		if diff := cmp.Diff(map[int]string{1: "1/10", 2: "9/10"}, pmf(first)); diff != "" {
			t.Errorf("ExpectedPlay(1) mismatch (-want +got):\n%s", diff)
		}

		second, err := b.ExpectedPlay(2)
		require.NoError(t, err)
		if diff := cmp.Diff(map[int]string{1: "1/5", 2: "4/5"}, pmf(second)); diff != "" {
			t.Errorf("ExpectedPlay(2) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("play probability", func(t *testing.T) {
		p, err := b.PlayProbability(2, 2)
		require.NoError(t, err)
		require.Zero(t, p.Cmp(r(4, 5)))

		_, err = b.PlayProbability(2, 3)
		require.ErrorIs(t, err, game.ErrNotFound)
		_, err = b.PlayProbability(3, 2)
		require.ErrorIs(t, err, game.ErrNotFound)
	})
}

func TestBehavioralPlay(t *testing.T) {
	b := exampleBehavioral(t)

	t.Run("requires a random source", func(t *testing.T) {
		_, err := b.Play(1, nil)
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("unknown information", func(t *testing.T) {
		_, err := b.Play(7, rand.NewSource(1))
		require.ErrorIs(t, err, game.ErrNotFound)
	})

	t.Run("plays only declared choices", func(t *testing.T) {
		src := rand.NewSource(1)
		for i := 0; i < 100; i++ {
			for _, info := range []int{1, 2} {
				c, err := b.Play(info, src)
				require.NoError(t, err)
				require.Contains(t, []int{1, 2}, c)
			}
		}
	})

	t.Run("converges to the declared distribution", func(t *testing.T) {
		const draws = 20000
		src := rand.NewSource(2024)
		hits := 0
		for i := 0; i < draws; i++ {
			c, err := b.Play(1, src)
			require.NoError(t, err)
			if c == 2 {
				hits++
			}
		}
		require.InDelta(t, 0.9, float64(hits)/draws, 0.02)
	})

	t.Run("reproducible with the same seed", func(t *testing.T) {
		run := func() []int {
			src := rand.NewSource(99)
			out := make([]int, 30)
			for i := range out {
				c, err := b.Play(2, src)
				require.NoError(t, err)
				out[i] = c
			}
			return out
		}
		require.Equal(t, run(), run())
	})
}
