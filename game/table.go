package game

import (
	"fmt"

	"signaling/utils"

	"golang.org/x/exp/slices"
)

// PayoffTable is a complete state × action lookup of payoffs.
type PayoffTable[S, A comparable] struct {
	rows  []S
	cols  []A
	cells map[S]map[A]Payoff
}

// NewPayoffTable wraps cells, which must hold a payoff for every row × column
// pair and nothing else.
func NewPayoffTable[S, A comparable](rows []S, cols []A, cells map[S]map[A]Payoff) (*PayoffTable[S, A], error) {
	if err := checkHeaders(rows, cols); err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: payoff table cannot be empty", ErrInvalidArgument)
	}

	t := &PayoffTable[S, A]{
		rows:  slices.Clone(rows),
		cols:  slices.Clone(cols),
		cells: make(map[S]map[A]Payoff, len(rows)),
	}
	for _, s := range rows {
		row, ok := cells[s]
		if !ok {
			return nil, fmt.Errorf("%w: payoff table is missing row %v", ErrInvalidArgument, s)
		}
		if len(row) != len(cols) {
			return nil, fmt.Errorf("%w: row %v has %d entries, expected %d", ErrInvalidArgument, s, len(row), len(cols))
		}
		t.cells[s] = make(map[A]Payoff, len(cols))
		for _, a := range cols {
			p, ok := row[a]
			if !ok {
				return nil, fmt.Errorf("%w: payoff table is missing entry (%v, %v)", ErrInvalidArgument, s, a)
			}
			t.cells[s][a] = p
		}
	}
	if len(cells) != len(rows) {
		return nil, fmt.Errorf("%w: payoff table has rows outside the declared states", ErrInvalidArgument)
	}
	return t, nil
}

// NewTable builds a table from row-major sender and receiver matrices whose
// dimensions match rows × cols exactly.
func NewTable[S, A comparable](rows []S, cols []A, sender, receiver [][]float64) (*PayoffTable[S, A], error) {
	if err := checkHeaders(rows, cols); err != nil {
		return nil, err
	}
	if err := checkMatrix("sender", sender, len(rows), len(cols)); err != nil {
		return nil, err
	}
	if err := checkMatrix("receiver", receiver, len(rows), len(cols)); err != nil {
		return nil, err
	}

	cells := make(map[S]map[A]Payoff, len(rows))
	for i, s := range rows {
		cells[s] = make(map[A]Payoff, len(cols))
		for j, a := range cols {
			cells[s][a] = Payoff{Sender: sender[i][j], Receiver: receiver[i][j]}
		}
	}
	return NewPayoffTable(rows, cols, cells)
}

// NewPureCoordinationTable builds a common-interest table where both players
// earn the same payoff.
func NewPureCoordinationTable[S, A comparable](rows []S, cols []A, payoffs [][]float64) (*PayoffTable[S, A], error) {
	return NewTable(rows, cols, payoffs, payoffs)
}

// Get looks up the payoff for state and action.
func (t *PayoffTable[S, A]) Get(state S, action A) (Payoff, error) {
	row, ok := t.cells[state]
	if !ok {
		return Payoff{}, fmt.Errorf("%w: unknown state %v", ErrInvalidArgument, state)
	}
	p, ok := row[action]
	if !ok {
		return Payoff{}, fmt.Errorf("%w: unknown action %v", ErrInvalidArgument, action)
	}
	return p, nil
}

func (t *PayoffTable[S, A]) Rows() []S {
	return slices.Clone(t.rows)
}

func (t *PayoffTable[S, A]) Columns() []A {
	return slices.Clone(t.cols)
}

func checkHeaders[S, A comparable](rows []S, cols []A) error {
	if len(rows) == 0 || len(cols) == 0 {
		return fmt.Errorf("%w: rows and columns must both have at least one element", ErrInvalidArgument)
	}
	if s, ok := utils.FirstDuplicate(rows); ok {
		return fmt.Errorf("%w: duplicate row %v", ErrInvalidArgument, s)
	}
	if a, ok := utils.FirstDuplicate(cols); ok {
		return fmt.Errorf("%w: duplicate column %v", ErrInvalidArgument, a)
	}
	return nil
}

func checkMatrix(name string, m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return fmt.Errorf("%w: %s payoffs have %d rows, expected %d", ErrInvalidArgument, name, len(m), rows)
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%w: %s payoffs row %d has %d columns, expected %d", ErrInvalidArgument, name, i, len(row), cols)
		}
	}
	return nil
}
