package engine

import (
	"fmt"

	"signaling/game"
	"signaling/strategy"

	"golang.org/x/exp/rand"
)

// Round is one stochastic realization of a game.
type Round[S, M, A comparable] struct {
	State   S
	Message M
	Action  A
	Payoff  game.Payoff
}

// Play draws a state from the prior, lets the sender signal and the receiver
// act, and scores the outcome. All randomness comes from src.
func Play[S, M, A comparable](g game.Game[S, M, A], sender strategy.Strategy[S, M], receiver strategy.Strategy[M, A], src rand.Source) (Round[S, M, A], error) {
	if g == nil || sender == nil || receiver == nil {
		return Round[S, M, A]{}, fmt.Errorf("%w: game, sender and receiver are required", game.ErrInvalidArgument)
	}
	state, err := g.StateSpace().Distribution().Sample(src)
	if err != nil {
		return Round[S, M, A]{}, fmt.Errorf("drawing a state: %w", err)
	}
	message, err := sender.Play(state, src)
	if err != nil {
		return Round[S, M, A]{}, fmt.Errorf("sender at state %v: %w", state, err)
	}
	action, err := receiver.Play(message, src)
	if err != nil {
		return Round[S, M, A]{}, fmt.Errorf("receiver at message %v: %w", message, err)
	}
	payoff, err := g.Utility(state, game.Some(message), action)
	if err != nil {
		return Round[S, M, A]{}, fmt.Errorf("utility of (%v, %v, %v): %w", state, message, action, err)
	}
	return Round[S, M, A]{State: state, Message: message, Action: action, Payoff: payoff}, nil
}
