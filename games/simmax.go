package games

import (
	"fmt"

	"signaling/game"
)

// NewSimilarityGame builds a similarity-maximization game: the receiver's
// actions are the states themselves, and both players earn
// similarity(distance(state, action)).
func NewSimilarityGame[S, M comparable](space *game.StateSpace[S], metric game.MetricSpace[S], messages []M, similarity Similarity) (*game.CheapTalkGame[S, M, S], error) {
	if space == nil || metric == nil || similarity == nil {
		return nil, fmt.Errorf("%w: state space, metric and similarity are required", game.ErrInvalidArgument)
	}
	states := space.States()
	for _, s := range states {
		if !metric.Contains(s) {
			return nil, fmt.Errorf("%w: state %v is not a point of the metric space", game.ErrInvalidArgument, s)
		}
	}

	return game.NewCheapTalkGame(space, messages, states, func(state, action S) (game.Payoff, error) {
		d, err := metric.Distance(state, action)
		if err != nil {
			return game.Payoff{}, err
		}
		return game.Symmetric(similarity(d)), nil
	})
}

// NewSimMaxGame is the Nosofsky-style similarity-maximization game over an
// interval with a uniform prior: both players earn exp(-scaling × d²).
func NewSimMaxGame[M comparable](points *game.Interval, messages []M, scaling float64) (*game.CheapTalkGame[game.Fraction, M, game.Fraction], error) {
	if points == nil {
		return nil, fmt.Errorf("%w: interval is required", game.ErrInvalidArgument)
	}
	similarity, err := Exponential(scaling)
	if err != nil {
		return nil, err
	}
	return NewSimilarityGame(points.StateSpace(), points, messages, similarity)
}
