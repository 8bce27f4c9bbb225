package game

import (
	"fmt"
	"math/big"

	"signaling/utils"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat/distuv"
)

var one = big.NewRat(1, 1)

// Distribution is a finite probability mass function with exact probabilities.
// The support keeps the order it was declared in, which makes sampling
// reproducible for a given random source. A Distribution is immutable.
type Distribution[T comparable] struct {
	values []T
	probs  []*big.Rat
	index  map[T]int
}

// NewDistribution pairs values[i] with probs[i]. Probabilities must be
// non-negative and sum to exactly one.
func NewDistribution[T comparable](values []T, probs []*big.Rat) (Distribution[T], error) {
	if len(values) == 0 {
		return Distribution[T]{}, fmt.Errorf("%w: distribution needs at least one value", ErrInvalidArgument)
	}
	if len(values) != len(probs) {
		return Distribution[T]{}, fmt.Errorf("%w: %d values but %d probabilities", ErrInvalidArgument, len(values), len(probs))
	}
	if v, ok := utils.FirstDuplicate(values); ok {
		return Distribution[T]{}, fmt.Errorf("%w: duplicate value %v", ErrInvalidArgument, v)
	}

	d := Distribution[T]{
		values: slices.Clone(values),
		probs:  make([]*big.Rat, len(probs)),
		index:  make(map[T]int, len(values)),
	}
	sum := new(big.Rat)
	for i, p := range probs {
		if p == nil {
			return Distribution[T]{}, fmt.Errorf("%w: missing probability for %v", ErrInvalidArgument, values[i])
		}
		if p.Sign() < 0 {
			return Distribution[T]{}, fmt.Errorf("%w: negative probability %s for %v", ErrInvalidArgument, p.RatString(), values[i])
		}
		d.probs[i] = new(big.Rat).Set(p)
		d.index[values[i]] = i
		sum.Add(sum, p)
	}
	if sum.Cmp(one) != 0 {
		return Distribution[T]{}, fmt.Errorf("%w: probabilities sum to %s, not 1", ErrInvalidArgument, sum.RatString())
	}
	return d, nil
}

// Uniform assigns exactly 1/len(values) to every value.
func Uniform[T comparable](values []T) (Distribution[T], error) {
	probs := make([]*big.Rat, len(values))
	for i := range probs {
		probs[i] = big.NewRat(1, int64(len(values)))
	}
	return NewDistribution(values, probs)
}

// PointMass puts all probability on v.
func PointMass[T comparable](v T) Distribution[T] {
	return Distribution[T]{
		values: []T{v},
		probs:  []*big.Rat{big.NewRat(1, 1)},
		index:  map[T]int{v: 0},
	}
}

func (d Distribution[T]) Len() int {
	return len(d.values)
}

// Values returns the support in declaration order.
func (d Distribution[T]) Values() []T {
	return slices.Clone(d.values)
}

func (d Distribution[T]) Contains(v T) bool {
	_, ok := d.index[v]
	return ok
}

// Prob returns a copy of the probability of v.
func (d Distribution[T]) Prob(v T) (*big.Rat, error) {
	i, ok := d.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v is not in the support", ErrNotFound, v)
	}
	return new(big.Rat).Set(d.probs[i]), nil
}

// Each calls fn for every value in support order. p must not be retained or
// modified.
func (d Distribution[T]) Each(fn func(v T, p *big.Rat)) {
	for i, v := range d.values {
		fn(v, d.probs[i])
	}
}

// Sample draws one value. Probabilities become float64 weights only here.
func (d Distribution[T]) Sample(src rand.Source) (T, error) {
	var zero T
	if src == nil {
		return zero, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	if len(d.values) == 0 {
		return zero, fmt.Errorf("%w: sampling an empty distribution", ErrInvalidArgument)
	}
	if len(d.values) == 1 {
		return d.values[0], nil
	}

	weights := make([]float64, len(d.probs))
	for i, p := range d.probs {
		weights[i], _ = p.Float64()
	}
	categorical := distuv.NewCategorical(weights, src)
	return d.values[int(categorical.Rand())], nil
}
