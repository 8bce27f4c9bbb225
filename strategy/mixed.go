package strategy

import (
	"fmt"
	"math/big"

	"signaling/game"
	"signaling/utils"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Mixed randomizes over whole pure strategies: Play first draws a pure
// strategy, then lets it choose. The same *Pure may back several mixed
// strategies.
type Mixed[I, C comparable] struct {
	strategies []*Pure[I, C]
	weights    game.Distribution[int]
}

// NewMixed plays strategies[k] with probability probs[k].
func NewMixed[I, C comparable](strategies []*Pure[I, C], probs []*big.Rat) (*Mixed[I, C], error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: mixed strategy needs at least one pure strategy", game.ErrInvalidArgument)
	}
	if len(strategies) != len(probs) {
		return nil, fmt.Errorf("%w: %d strategies but %d probabilities", game.ErrInvalidArgument, len(strategies), len(probs))
	}
	for k, s := range strategies {
		if s == nil {
			return nil, fmt.Errorf("%w: pure strategy %d is nil", game.ErrInvalidArgument, k)
		}
	}

	indices := make([]int, len(strategies))
	for k := range indices {
		indices[k] = k
	}
	weights, err := game.NewDistribution(indices, probs)
	if err != nil {
		return nil, fmt.Errorf("mixed strategy: %w", err)
	}
	return &Mixed[I, C]{strategies: slices.Clone(strategies), weights: weights}, nil
}

// NewUniformMixed plays each of strategies with equal probability.
func NewUniformMixed[I, C comparable](strategies []*Pure[I, C]) (*Mixed[I, C], error) {
	probs := make([]*big.Rat, len(strategies))
	for k := range probs {
		probs[k] = big.NewRat(1, int64(len(strategies)))
	}
	return NewMixed(strategies, probs)
}

func (m *Mixed[I, C]) Play(information I, src rand.Source) (C, error) {
	k, err := m.weights.Sample(src)
	if err != nil {
		var zero C
		return zero, err
	}
	return m.strategies[k].Choose(information)
}

// ExpectedPlay folds the component strategies into one distribution over
// choices for information. Every component with positive weight must cover
// information; components Play can never pick are skipped.
func (m *Mixed[I, C]) ExpectedPlay(information I) (game.Distribution[C], error) {
	var choices []C
	var probs []*big.Rat
	for k, s := range m.strategies {
		p, _ := m.weights.Prob(k)
		if p.Sign() == 0 {
			continue
		}
		c, err := s.Choose(information)
		if err != nil {
			return game.Distribution[C]{}, fmt.Errorf("component %d: %w", k, err)
		}
		if i := utils.FindIndex(choices, c); i >= 0 {
			probs[i].Add(probs[i], p)
			continue
		}
		choices = append(choices, c)
		probs = append(probs, p)
	}
	return game.NewDistribution(choices, probs)
}

// Strategies returns the component pure strategies.
func (m *Mixed[I, C]) Strategies() []*Pure[I, C] {
	return slices.Clone(m.strategies)
}
