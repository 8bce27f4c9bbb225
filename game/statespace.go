package game

import (
	"fmt"
	"math"
	"math/big"

	"gonum.org/v1/gonum/stat/distuv"
)

// StateSpace is a finite set of states, each tagged with an exact prior
// probability. Priors are non-negative and sum to exactly one.
type StateSpace[S comparable] struct {
	priors Distribution[S]
}

// NewUniform gives every state the prior 1/len(states).
func NewUniform[S comparable](states []S) (*StateSpace[S], error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: set of states must be non-empty", ErrInvalidArgument)
	}
	priors, err := Uniform(states)
	if err != nil {
		return nil, err
	}
	return &StateSpace[S]{priors: priors}, nil
}

// NewStateSpace assigns priors[i] to states[i].
func NewStateSpace[S comparable](states []S, priors []*big.Rat) (*StateSpace[S], error) {
	d, err := NewDistribution(states, priors)
	if err != nil {
		return nil, fmt.Errorf("state space: %w", err)
	}
	return &StateSpace[S]{priors: d}, nil
}

// Normalize builds a state space whose priors are proportional to weights.
// Weights must be non-negative with a positive total.
func Normalize[S comparable](states []S, weights []*big.Rat) (*StateSpace[S], error) {
	if len(states) != len(weights) {
		return nil, fmt.Errorf("%w: %d states but %d weights", ErrInvalidArgument, len(states), len(weights))
	}
	total := new(big.Rat)
	for i, w := range weights {
		if w == nil || w.Sign() < 0 {
			return nil, fmt.Errorf("%w: weight for %v must be non-negative", ErrInvalidArgument, states[i])
		}
		total.Add(total, w)
	}
	if total.Sign() == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidArgument)
	}

	priors := make([]*big.Rat, len(weights))
	for i, w := range weights {
		priors[i] = new(big.Rat).Quo(w, total)
	}
	return NewStateSpace(states, priors)
}

// NewNormal weights each state by the normal density at position(state) and
// normalizes the weights into exact priors.
func NewNormal[S comparable](states []S, position func(S) float64, mean, stddev float64) (*StateSpace[S], error) {
	if position == nil {
		return nil, fmt.Errorf("%w: position function cannot be nil", ErrInvalidArgument)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("%w: mean must be finite, got %v", ErrInvalidArgument, mean)
	}
	if !(stddev > 0) || math.IsInf(stddev, 0) {
		return nil, fmt.Errorf("%w: standard deviation must be finite and positive, got %v", ErrInvalidArgument, stddev)
	}

	normal := distuv.Normal{Mu: mean, Sigma: stddev}
	weights := make([]*big.Rat, len(states))
	for i, s := range states {
		x := position(s)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: position of %v is not finite", ErrInvalidArgument, s)
		}
		weights[i] = new(big.Rat).SetFloat64(normal.Prob(x))
	}
	return Normalize(states, weights)
}

// States returns the states in declaration order.
func (ss *StateSpace[S]) States() []S {
	return ss.priors.Values()
}

func (ss *StateSpace[S]) Len() int {
	return ss.priors.Len()
}

func (ss *StateSpace[S]) Contains(state S) bool {
	return ss.priors.Contains(state)
}

// Prior returns a copy of the prior probability of state.
func (ss *StateSpace[S]) Prior(state S) (*big.Rat, error) {
	p, err := ss.priors.Prob(state)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown state %v", ErrNotFound, state)
	}
	return p, nil
}

// Distribution exposes the priors for sampling states.
func (ss *StateSpace[S]) Distribution() Distribution[S] {
	return ss.priors
}
