package engine

import (
	"fmt"
	"math"
	"math/big"

	"signaling/game"
	"signaling/strategy"

	"github.com/rs/zerolog/log"
)

// Calculator computes exact expected payoffs of strategy profiles in one game.
// It keeps no state besides the game, so one Calculator can evaluate any
// number of profiles, concurrently.
type Calculator[S, M, A comparable] struct {
	game game.Game[S, M, A]
}

func NewCalculator[S, M, A comparable](g game.Game[S, M, A]) (*Calculator[S, M, A], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: game cannot be nil", game.ErrInvalidArgument)
	}
	return &Calculator[S, M, A]{game: g}, nil
}

func (c *Calculator[S, M, A]) Game() game.Game[S, M, A] {
	return c.game
}

// CalculateExpectedUtility is the deterministic-only entry point. It sums
// prior(s) × utility(s, m, a) over every state s, where m is the sender's
// choice for s and a is the receiver's choice for m. Sums are exact; the
// result is converted to float64 once, at the end.
func (c *Calculator[S, M, A]) CalculateExpectedUtility(sender *strategy.Pure[S, M], receiver *strategy.Pure[M, A]) (game.Payoff, error) {
	if sender == nil || receiver == nil {
		return game.Payoff{}, fmt.Errorf("%w: sender and receiver strategies are required", game.ErrInvalidArgument)
	}

	space := c.game.StateSpace()
	acc := newAccumulator()
	for _, state := range space.States() {
		prior, err := space.Prior(state)
		if err != nil {
			return game.Payoff{}, err
		}
		message, err := sender.Choose(state)
		if err != nil {
			return game.Payoff{}, fmt.Errorf("sender at state %v: %w", state, err)
		}
		action, err := receiver.Choose(message)
		if err != nil {
			return game.Payoff{}, fmt.Errorf("receiver at message %v: %w", message, err)
		}
		utility, err := c.game.Utility(state, game.Some(message), action)
		if err != nil {
			return game.Payoff{}, fmt.Errorf("utility of (%v, %v, %v): %w", state, message, action, err)
		}
		if err := acc.add(prior, utility); err != nil {
			return game.Payoff{}, fmt.Errorf("utility of (%v, %v, %v): %w", state, message, action, err)
		}
	}

	payoff := acc.payoff()
	log.Debug().Msgf("expected utility of pure profile over %d states: %s", space.Len(), payoff)
	return payoff, nil
}

// CalculateExactExpectation is the exact-expectation entry point. It accepts
// any strategies that expose their distributions and sums over the full
// joint distribution of messages and actions:
//
//	Σ_s prior(s) Σ_m P(m|s) Σ_a P(a|m) utility(s, m, a)
//
// Branches with probability zero are skipped. On pure strategies the result
// equals CalculateExpectedUtility.
func (c *Calculator[S, M, A]) CalculateExactExpectation(sender strategy.Expecter[S, M], receiver strategy.Expecter[M, A]) (game.Payoff, error) {
	acc, branches, err := c.expectation(sender, receiver)
	if err != nil {
		return game.Payoff{}, err
	}
	payoff := acc.payoff()
	log.Debug().Msgf("exact expectation over %d branches: %s", branches, payoff)
	return payoff, nil
}

// expectation sums the exact expected payoffs and counts the branches with
// positive probability.
func (c *Calculator[S, M, A]) expectation(sender strategy.Expecter[S, M], receiver strategy.Expecter[M, A]) (*accumulator, int, error) {
	if sender == nil || receiver == nil {
		return nil, 0, fmt.Errorf("%w: sender and receiver strategies are required", game.ErrInvalidArgument)
	}

	space := c.game.StateSpace()
	acc := newAccumulator()
	branches := 0
	for _, state := range space.States() {
		prior, err := space.Prior(state)
		if err != nil {
			return nil, 0, err
		}
		if prior.Sign() == 0 {
			continue
		}
		messages, err := sender.ExpectedPlay(state)
		if err != nil {
			return nil, 0, fmt.Errorf("sender at state %v: %w", state, err)
		}
		for _, message := range messages.Values() {
			pm, _ := messages.Prob(message)
			if pm.Sign() == 0 {
				continue
			}
			actions, err := receiver.ExpectedPlay(message)
			if err != nil {
				return nil, 0, fmt.Errorf("receiver at message %v: %w", message, err)
			}
			for _, action := range actions.Values() {
				pa, _ := actions.Prob(action)
				if pa.Sign() == 0 {
					continue
				}
				utility, err := c.game.Utility(state, game.Some(message), action)
				if err != nil {
					return nil, 0, fmt.Errorf("utility of (%v, %v, %v): %w", state, message, action, err)
				}
				weight := new(big.Rat).Mul(prior, pm)
				weight.Mul(weight, pa)
				if err := acc.add(weight, utility); err != nil {
					return nil, 0, fmt.Errorf("utility of (%v, %v, %v): %w", state, message, action, err)
				}
				branches++
			}
		}
	}
	return acc, branches, nil
}

// accumulator keeps running exact sums of weighted sender and receiver
// payoffs.
type accumulator struct {
	sender   *big.Rat
	receiver *big.Rat
	term     *big.Rat
}

func newAccumulator() *accumulator {
	return &accumulator{sender: new(big.Rat), receiver: new(big.Rat), term: new(big.Rat)}
}

func (acc *accumulator) add(weight *big.Rat, utility game.Payoff) error {
	if err := acc.addTerm(acc.sender, weight, utility.Sender); err != nil {
		return err
	}
	return acc.addTerm(acc.receiver, weight, utility.Receiver)
}

func (acc *accumulator) addTerm(sum, weight *big.Rat, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: payoff %v is not finite", game.ErrInvalidArgument, value)
	}
	// SetFloat64 is exact: every finite float64 is a dyadic rational.
	acc.term.SetFloat64(value)
	acc.term.Mul(acc.term, weight)
	sum.Add(sum, acc.term)
	return nil
}

func (acc *accumulator) payoff() game.Payoff {
	sender, _ := acc.sender.Float64()
	receiver, _ := acc.receiver.Float64()
	return game.Payoff{Sender: sender, Receiver: receiver}
}
