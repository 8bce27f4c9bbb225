package strategy

import (
	"fmt"
	"math/big"

	"signaling/game"

	"golang.org/x/exp/slices"
)

// Table collects the probabilities of a behavioral strategy, one row per
// information value. Rows and the choices inside each row keep insertion
// order.
type Table[I, C comparable] struct {
	rows  []I
	cells map[I]*row[C]
	err   error // first malformed PutRow, reported by NewBehavioral
}

type row[C comparable] struct {
	choices []C
	probs   map[C]*big.Rat
}

func NewTable[I, C comparable]() *Table[I, C] {
	return &Table[I, C]{cells: make(map[I]*row[C])}
}

// Put sets the probability of playing choice given information. Putting the
// same cell twice overwrites it.
func (t *Table[I, C]) Put(information I, choice C, probability *big.Rat) *Table[I, C] {
	r, ok := t.cells[information]
	if !ok {
		r = &row[C]{probs: make(map[C]*big.Rat)}
		t.cells[information] = r
		t.rows = append(t.rows, information)
	}
	if _, ok := r.probs[choice]; !ok {
		r.choices = append(r.choices, choice)
	}
	r.probs[choice] = probability
	return t
}

// PutRow sets a whole row at once. choices[k] gets probabilities[k]; lists of
// different lengths leave the row untouched and make NewBehavioral fail.
func (t *Table[I, C]) PutRow(information I, choices []C, probabilities []*big.Rat) *Table[I, C] {
	if len(choices) != len(probabilities) {
		if t.err == nil {
			t.err = fmt.Errorf("%w: row %v has %d choices but %d probabilities",
				game.ErrInvalidArgument, information, len(choices), len(probabilities))
		}
		return t
	}
	for k, c := range choices {
		t.Put(information, c, probabilities[k])
	}
	return t
}

// Len returns the number of cells.
func (t *Table[I, C]) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, r := range t.cells {
		n += len(r.choices)
	}
	return n
}

func (t *Table[I, C]) Rows() []I {
	return slices.Clone(t.rows)
}
