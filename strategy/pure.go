package strategy

import (
	"fmt"

	"signaling/game"
	"signaling/utils"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Pure is a deterministic choice function.
type Pure[I, C comparable] struct {
	domain []I
	choice map[I]C
}

// NewPure copies choiceFunction, which must hold at least one mapping.
// Domain() of the result has no particular order; use NewPureFromLists when
// order matters.
func NewPure[I, C comparable](choiceFunction map[I]C) (*Pure[I, C], error) {
	if len(choiceFunction) == 0 {
		return nil, fmt.Errorf("%w: choice function should have at least one mapping", game.ErrInvalidArgument)
	}
	p := &Pure[I, C]{
		domain: make([]I, 0, len(choiceFunction)),
		choice: make(map[I]C, len(choiceFunction)),
	}
	for i, c := range choiceFunction {
		p.domain = append(p.domain, i)
		p.choice[i] = c
	}
	return p, nil
}

// NewPureFromLists maps information[k] to choices[k].
func NewPureFromLists[I, C comparable](information []I, choices []C) (*Pure[I, C], error) {
	if len(information) == 0 {
		return nil, fmt.Errorf("%w: information set should have at least one value", game.ErrInvalidArgument)
	}
	if len(choices) == 0 {
		return nil, fmt.Errorf("%w: choice set should have at least one value", game.ErrInvalidArgument)
	}
	if len(information) != len(choices) {
		return nil, fmt.Errorf("%w: information set and choice set should have the same number of values (%d != %d)",
			game.ErrInvalidArgument, len(information), len(choices))
	}
	if i, ok := utils.FirstDuplicate(information); ok {
		return nil, fmt.Errorf("%w: information %v is mapped twice", game.ErrInvalidArgument, i)
	}

	p := &Pure[I, C]{
		domain: slices.Clone(information),
		choice: make(map[I]C, len(information)),
	}
	for k, i := range information {
		p.choice[i] = choices[k]
	}
	return p, nil
}

// Play returns the mapped choice. src is not used.
func (p *Pure[I, C]) Play(information I, _ rand.Source) (C, error) {
	return p.Choose(information)
}

// Choose is Play without a random source.
func (p *Pure[I, C]) Choose(information I) (C, error) {
	c, ok := p.choice[information]
	if !ok {
		var zero C
		return zero, fmt.Errorf("%w: information %v is outside the strategy's domain", game.ErrNotFound, information)
	}
	return c, nil
}

func (p *Pure[I, C]) ExpectedPlay(information I) (game.Distribution[C], error) {
	c, err := p.Choose(information)
	if err != nil {
		return game.Distribution[C]{}, err
	}
	return game.PointMass(c), nil
}

func (p *Pure[I, C]) Domain() []I {
	return slices.Clone(p.domain)
}
