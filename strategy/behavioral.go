package strategy

import (
	"fmt"
	"math/big"

	"signaling/game"
	"signaling/utils"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Behavioral plays, for every information value, a choice drawn from its own
// distribution over a shared set of choices.
type Behavioral[I, C comparable] struct {
	domain   []I
	choices  []C
	behavior map[I]game.Distribution[C]
}

// NewBehavioral validates probabilities and builds the strategy. Every row must
// define a probability for the same set of choices, and every row must sum to
// exactly one.
func NewBehavioral[I, C comparable](probabilities *Table[I, C]) (*Behavioral[I, C], error) {
	if probabilities == nil {
		return nil, fmt.Errorf("%w: probability table should not be nil", game.ErrInvalidArgument)
	}
	if probabilities.err != nil {
		return nil, probabilities.err
	}
	if probabilities.Len() == 0 {
		return nil, fmt.Errorf("%w: probability table should not be empty", game.ErrInvalidArgument)
	}

	first := probabilities.cells[probabilities.rows[0]].choices
	b := &Behavioral[I, C]{
		domain:   slices.Clone(probabilities.rows),
		choices:  slices.Clone(first),
		behavior: make(map[I]game.Distribution[C], len(probabilities.rows)),
	}
	for _, info := range probabilities.rows {
		r := probabilities.cells[info]
		if !utils.SameSet(first, r.choices) {
			return nil, fmt.Errorf("%w: probability table should define probabilities for all information and choice combinations (row %v)",
				game.ErrInvalidArgument, info)
		}
		probs := make([]*big.Rat, len(r.choices))
		for k, c := range r.choices {
			probs[k] = r.probs[c]
		}
		d, err := game.NewDistribution(r.choices, probs)
		if err != nil {
			return nil, fmt.Errorf("row %v is not a probability mass function: %w", info, err)
		}
		b.behavior[info] = d
	}
	return b, nil
}

// Play draws one choice for information.
func (b *Behavioral[I, C]) Play(information I, src rand.Source) (C, error) {
	d, err := b.ExpectedPlay(information)
	if err != nil {
		var zero C
		return zero, err
	}
	return d.Sample(src)
}

// ExpectedPlay returns the distribution over choices for information.
func (b *Behavioral[I, C]) ExpectedPlay(information I) (game.Distribution[C], error) {
	d, ok := b.behavior[information]
	if !ok {
		return game.Distribution[C]{}, fmt.Errorf("%w: unknown information %v", game.ErrNotFound, information)
	}
	return d, nil
}

// PlayProbability returns the probability of choosing choice given information.
func (b *Behavioral[I, C]) PlayProbability(information I, choice C) (*big.Rat, error) {
	d, err := b.ExpectedPlay(information)
	if err != nil {
		return nil, err
	}
	p, err := d.Prob(choice)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown choice %v", game.ErrNotFound, choice)
	}
	return p, nil
}

func (b *Behavioral[I, C]) Domain() []I {
	return slices.Clone(b.domain)
}

// Choices returns the choice set in the order of the first row.
func (b *Behavioral[I, C]) Choices() []C {
	return slices.Clone(b.choices)
}
