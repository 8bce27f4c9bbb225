package games

import (
	"testing"

	"signaling/game"

	"github.com/stretchr/testify/require"
)

var (
	states   = []string{"R1", "R2", "R3"}
	messages = []string{"M1", "M2", "M3"}
	actions  = []string{"C1", "C2", "C3"}
)

func identityTable(t *testing.T) *game.PayoffTable[string, string] {
	t.Helper()
	table, err := game.NewPureCoordinationTable(states, actions, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	return table
}

func TestNewLewisGame(t *testing.T) {
	space, err := game.NewUniform(states)
	require.NoError(t, err)

	t.Run("scores from the table", func(t *testing.T) {
		g, err := NewLewisGame(space, messages, actions, identityTable(t))
		require.NoError(t, err)
		require.Equal(t, game.CheapTalk, g.Kind())

		p, err := g.Utility("R2", game.Some("M3"), "C2")
		require.NoError(t, err)
		require.Equal(t, game.Symmetric(1), p)

		p, err = g.Utility("R2", game.None[string](), "C1")
		require.NoError(t, err)
		require.Equal(t, game.Symmetric(0), p)
	})

	t.Run("rejects a table over other states", func(t *testing.T) {
		table, err := game.NewPureCoordinationTable([]string{"R1", "R2"}, actions, [][]float64{
			{1, 0, 0},
			{0, 1, 0},
		})
		require.NoError(t, err)
		_, err = NewLewisGame(space, messages, actions, table)
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("rejects a table over other actions", func(t *testing.T) {
		_, err := NewLewisGame(space, messages, []string{"C1", "C2"}, identityTable(t))
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("rejects a nil table", func(t *testing.T) {
		_, err := NewLewisGame[string, string, string](space, messages, actions, nil)
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})
}

func TestNewCostlyLewisGame(t *testing.T) {
	space, err := game.NewUniform(states)
	require.NoError(t, err)
	costs := map[string]float64{"M1": 0, "M2": 0.25, "M3": 0.5}

	t.Run("charges the sender for the message", func(t *testing.T) {
		g, err := NewCostlyLewisGame(space, messages, actions, identityTable(t), costs)
		require.NoError(t, err)
		require.Equal(t, game.CostlySignaling, g.Kind())

		p, err := g.Utility("R1", game.Some("M3"), "C1")
		require.NoError(t, err)
		require.Equal(t, game.Payoff{Sender: 0.5, Receiver: 1}, p)

		p, err = g.Utility("R1", game.Some("M1"), "C1")
		require.NoError(t, err)
		require.Equal(t, game.Symmetric(1), p)
	})

	t.Run("requires the message", func(t *testing.T) {
		g, err := NewCostlyLewisGame(space, messages, actions, identityTable(t), costs)
		require.NoError(t, err)
		_, err = g.Utility("R1", game.None[string](), "C1")
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("rejects a message without a cost", func(t *testing.T) {
		_, err := NewCostlyLewisGame(space, messages, actions, identityTable(t), map[string]float64{"M1": 0})
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("later changes to the cost map are not seen", func(t *testing.T) {
		own := map[string]float64{"M1": 0, "M2": 0, "M3": 0}
		g, err := NewCostlyLewisGame(space, messages, actions, identityTable(t), own)
		require.NoError(t, err)
		own["M1"] = 10

		p, err := g.Utility("R1", game.Some("M1"), "C1")
		require.NoError(t, err)
		require.Equal(t, game.Symmetric(1), p)
	})
}
