package games

import (
	"fmt"

	"signaling/game"
	"signaling/utils"
)

// NewLewisGame builds a Lewisian coordination game: cheap talk with payoffs
// looked up in table. Table rows must be the states and its columns the
// actions.
func NewLewisGame[S, M, A comparable](space *game.StateSpace[S], messages []M, actions []A, table *game.PayoffTable[S, A]) (*game.CheapTalkGame[S, M, A], error) {
	if err := checkTable(space, actions, table); err != nil {
		return nil, err
	}
	return game.NewCheapTalkGame(space, messages, actions, table.Get)
}

// NewCostlyLewisGame is NewLewisGame where sending message m costs the sender
// costs[m]. Every message needs a cost.
func NewCostlyLewisGame[S, M, A comparable](space *game.StateSpace[S], messages []M, actions []A, table *game.PayoffTable[S, A], costs map[M]float64) (*game.CostlySignalingGame[S, M, A], error) {
	if err := checkTable(space, actions, table); err != nil {
		return nil, err
	}
	for _, m := range messages {
		if _, ok := costs[m]; !ok {
			return nil, fmt.Errorf("%w: message %v has no cost", game.ErrInvalidArgument, m)
		}
	}
	priced := make(map[M]float64, len(costs))
	for m, c := range costs {
		priced[m] = c
	}

	return game.NewCostlySignalingGame(space, messages, actions, func(state S, message M, action A) (game.Payoff, error) {
		p, err := table.Get(state, action)
		if err != nil {
			return game.Payoff{}, err
		}
		p.Sender -= priced[message]
		return p, nil
	})
}

func checkTable[S, A comparable](space *game.StateSpace[S], actions []A, table *game.PayoffTable[S, A]) error {
	if space == nil || table == nil {
		return fmt.Errorf("%w: state space and payoff table are required", game.ErrInvalidArgument)
	}
	if !utils.SameSet(space.States(), table.Rows()) {
		return fmt.Errorf("%w: payoff table rows do not match the states", game.ErrInvalidArgument)
	}
	if !utils.SameSet(actions, table.Columns()) {
		return fmt.Errorf("%w: payoff table columns do not match the actions", game.ErrInvalidArgument)
	}
	return nil
}
