package game

import (
	"fmt"
	"math/big"
)

// Fraction is an exact rational number that can be used as a map key or as a
// state value. The zero value is 0/1. Fractions are kept in lowest terms with a
// positive denominator, so == compares values.
type Fraction struct {
	num   int64
	denM1 int64 // denominator minus one, so the zero value is 0/1
}

// NewFraction returns num/den in lowest terms.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("%w: zero denominator in %d/%d", ErrInvalidArgument, num, den)
	}
	return FractionFromRat(big.NewRat(num, den))
}

// FractionFromRat converts r, failing if either part overflows int64.
func FractionFromRat(r *big.Rat) (Fraction, error) {
	if r == nil {
		return Fraction{}, fmt.Errorf("%w: nil rational", ErrInvalidArgument)
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Fraction{}, fmt.Errorf("%w: %s does not fit in a fraction", ErrInvalidArgument, r.RatString())
	}
	return Fraction{num: r.Num().Int64(), denM1: r.Denom().Int64() - 1}, nil
}

// Integer returns n/1.
func Integer(n int64) Fraction {
	return Fraction{num: n}
}

func (f Fraction) Num() int64 {
	return f.num
}

func (f Fraction) Den() int64 {
	return f.denM1 + 1
}

// Rat returns a fresh big.Rat equal to f.
func (f Fraction) Rat() *big.Rat {
	return big.NewRat(f.num, f.Den())
}

func (f Fraction) Cmp(other Fraction) int {
	return f.Rat().Cmp(other.Rat())
}

func (f Fraction) Float64() float64 {
	v, _ := f.Rat().Float64()
	return v
}

func (f Fraction) String() string {
	return f.Rat().RatString()
}
