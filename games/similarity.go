package games

import (
	"fmt"
	"math"

	"signaling/game"
)

// Similarity turns the distance between a state and an action into a payoff.
type Similarity func(distance float64) float64

// Exponential decays as exp(-scaling × d²).
func Exponential(scaling float64) (Similarity, error) {
	if scaling < 0 || math.IsNaN(scaling) || math.IsInf(scaling, 0) {
		return nil, fmt.Errorf("%w: scaling factor must be finite and non-negative, got %v", game.ErrInvalidArgument, scaling)
	}
	return func(d float64) float64 {
		return math.Exp(-scaling * d * d)
	}, nil
}

// Nosofsky decays as exp(-d² / decay²).
func Nosofsky(decay float64) (Similarity, error) {
	if decay <= 0 || math.IsNaN(decay) || math.IsInf(decay, 0) {
		return nil, fmt.Errorf("%w: decay must be finite and positive, got %v", game.ErrInvalidArgument, decay)
	}
	return Exponential(1 / (decay * decay))
}

// Identity pays 1 for a perfect match and 0 otherwise.
func Identity() Similarity {
	return func(d float64) float64 {
		if d == 0 {
			return 1
		}
		return 0
	}
}
