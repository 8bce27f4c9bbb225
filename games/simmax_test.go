package games

import (
	"math"
	"math/big"
	"testing"

	"signaling/game"

	"github.com/stretchr/testify/require"
)

func fraction(t *testing.T, num, den int64) game.Fraction {
	t.Helper()
	f, err := game.NewFraction(num, den)
	require.NoError(t, err)
	return f
}

func TestNewSimMaxGame(t *testing.T) {
	interval, err := game.NewUnitInterval(3)
	require.NoError(t, err)
	g, err := NewSimMaxGame(interval, []string{"low", "high"}, 0.5)
	require.NoError(t, err)

	zero, half, one := game.Integer(0), fraction(t, 1, 2), game.Integer(1)

	t.Run("actions are the states", func(t *testing.T) {
		require.Equal(t, []game.Fraction{zero, half, one}, g.Actions())
		require.Equal(t, interval.Points(), g.StateSpace().States())
	})

	t.Run("payoff decays with distance", func(t *testing.T) {
		far, err := g.UtilityOf(zero, one)
		require.NoError(t, err)
		require.InDelta(t, 0.606, far.Sender, 0.001)
		require.Equal(t, far.Sender, far.Receiver)

		near, err := g.UtilityOf(zero, half)
		require.NoError(t, err)
		require.InDelta(t, 0.882, near.Sender, 0.001)
		require.Equal(t, near.Sender, near.Receiver)

		other, err := g.UtilityOf(half, one)
		require.NoError(t, err)
		require.Equal(t, near, other)

		exact, err := g.UtilityOf(half, half)
		require.NoError(t, err)
		require.Equal(t, game.Symmetric(1), exact)
	})

	t.Run("uniform prior", func(t *testing.T) {
		p, err := g.StateSpace().Prior(half)
		require.NoError(t, err)
		require.Equal(t, "1/3", p.RatString())
	})

	t.Run("rejects points outside the interval", func(t *testing.T) {
		_, err := g.UtilityOf(fraction(t, 1, 4), half)
		require.ErrorIs(t, err, game.ErrNotFound)
	})

	t.Run("rejects a negative scaling factor", func(t *testing.T) {
		_, err := NewSimMaxGame(interval, []string{"low"}, -1)
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("rejects a nil interval", func(t *testing.T) {
		_, err := NewSimMaxGame[string](nil, []string{"low"}, 1)
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})
}

func TestNewSimilarityGame(t *testing.T) {
	interval, err := game.NewUnitInterval(5)
	require.NoError(t, err)

	t.Run("identity similarity is a Lewis game", func(t *testing.T) {
		g, err := NewSimilarityGame(interval.StateSpace(), interval, []int{0, 1}, Identity())
		require.NoError(t, err)

		p, err := g.UtilityOf(game.Integer(1), game.Integer(1))
		require.NoError(t, err)
		require.Equal(t, game.Symmetric(1), p)

		p, err = g.UtilityOf(game.Integer(1), fraction(t, 3, 4))
		require.NoError(t, err)
		require.Equal(t, game.Symmetric(0), p)
	})

	t.Run("rejects states that are not points", func(t *testing.T) {
		space, err := game.NewUniform([]game.Fraction{game.Integer(0), fraction(t, 1, 3)})
		require.NoError(t, err)
		_, err = NewSimilarityGame(space, interval, []int{0}, Identity())
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("accepts a non-uniform prior", func(t *testing.T) {
		coarse, err := game.NewUnitInterval(2)
		require.NoError(t, err)
		space, err := game.Normalize(coarse.Points(), []*big.Rat{big.NewRat(1, 1), big.NewRat(3, 1)})
		require.NoError(t, err)
		g, err := NewSimilarityGame(space, coarse, []int{0}, Identity())
		require.NoError(t, err)

		p, err := g.StateSpace().Prior(game.Integer(1))
		require.NoError(t, err)
		require.Equal(t, "3/4", p.RatString())
	})
}

func TestSimilarities(t *testing.T) {
	t.Run("nosofsky", func(t *testing.T) {
		sim, err := Nosofsky(2)
		require.NoError(t, err)
		require.Equal(t, 1.0, sim(0))
		require.InDelta(t, math.Exp(-0.25), sim(1), 1e-12)
		require.Greater(t, sim(0.5), sim(1))
	})

	t.Run("exponential", func(t *testing.T) {
		sim, err := Exponential(0.5)
		require.NoError(t, err)
		require.InDelta(t, math.Exp(-0.5), sim(1), 1e-12)

		flat, err := Exponential(0)
		require.NoError(t, err)
		require.Equal(t, 1.0, flat(3))
	})

	t.Run("identity", func(t *testing.T) {
		sim := Identity()
		require.Equal(t, 1.0, sim(0))
		require.Equal(t, 0.0, sim(0.001))
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		_, err := Nosofsky(0)
		require.ErrorIs(t, err, game.ErrInvalidArgument)
		_, err = Nosofsky(math.Inf(1))
		require.ErrorIs(t, err, game.ErrInvalidArgument)
		_, err = Exponential(math.NaN())
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})
}
