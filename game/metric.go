package game

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"
)

// Metric defines a distance function on T. Implementations guarantee the
// metric axioms on their declared points: non-negative, zero iff equal,
// symmetric, and the triangle inequality.
type Metric[T comparable] interface {
	Distance(x, y T) (float64, error)
}

// MetricSpace is a finite set of points with a metric over them.
type MetricSpace[T comparable] interface {
	Metric[T]
	Points() []T
	Contains(point T) bool
}

// Interval is a set of evenly spaced rational points on [start, end] with the
// absolute-difference metric.
type Interval struct {
	points []Fraction
	index  map[Fraction]struct{}
}

// NewUnitInterval spreads granularity points evenly over [0, 1].
func NewUnitInterval(granularity int) (*Interval, error) {
	if granularity < 2 {
		return nil, fmt.Errorf("%w: unit interval granularity should not be lower than 2 but was %d", ErrInvalidArgument, granularity)
	}
	return NewInterval(Integer(0), Integer(1), granularity)
}

// NewInterval spreads size points evenly over [start, end], both included.
func NewInterval(start, end Fraction, size int) (*Interval, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: interval size should not be lower than 2 but was %d", ErrInvalidArgument, size)
	}
	if end.Cmp(start) <= 0 {
		return nil, fmt.Errorf("%w: interval end %s must be greater than start %s", ErrInvalidArgument, end, start)
	}

	step := new(big.Rat).Sub(end.Rat(), start.Rat())
	step.Quo(step, big.NewRat(int64(size-1), 1))

	in := &Interval{
		points: make([]Fraction, size),
		index:  make(map[Fraction]struct{}, size),
	}
	for i := 0; i < size; i++ {
		r := new(big.Rat).Mul(step, big.NewRat(int64(i), 1))
		r.Add(r, start.Rat())
		point, err := FractionFromRat(r)
		if err != nil {
			return nil, err
		}
		in.points[i] = point
		in.index[point] = struct{}{}
	}
	return in, nil
}

// Points returns the points in increasing order.
func (in *Interval) Points() []Fraction {
	return slices.Clone(in.points)
}

func (in *Interval) Contains(point Fraction) bool {
	_, ok := in.index[point]
	return ok
}

// ExactDistance returns |x - y|.
func (in *Interval) ExactDistance(x, y Fraction) (*big.Rat, error) {
	if !in.Contains(x) {
		return nil, fmt.Errorf("%w: %s is not a point of the interval", ErrInvalidArgument, x)
	}
	if !in.Contains(y) {
		return nil, fmt.Errorf("%w: %s is not a point of the interval", ErrInvalidArgument, y)
	}
	d := new(big.Rat).Sub(x.Rat(), y.Rat())
	return d.Abs(d), nil
}

func (in *Interval) Distance(x, y Fraction) (float64, error) {
	d, err := in.ExactDistance(x, y)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// StateSpace returns the points as states with a uniform prior.
func (in *Interval) StateSpace() *StateSpace[Fraction] {
	ss, err := NewUniform(in.points)
	if err != nil {
		// points always holds at least two distinct values
		panic(err)
	}
	return ss
}

// NormalStateSpace builds a StateSpace over the points whose priors follow a
// normal distribution with the given mean and standard deviation.
func (in *Interval) NormalStateSpace(mean, stddev float64) (*StateSpace[Fraction], error) {
	return NewNormal(in.points, Fraction.Float64, mean, stddev)
}
