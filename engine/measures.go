package engine

import (
	"fmt"
	"math"
	"math/big"

	"signaling/game"
	"signaling/strategy"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// NormalizedExpectedUtility divides the exact expected payoff of a profile by
// the best expected payoff the game allows,
//
//	Σ_s prior(s) max_{m,a} utility(s, m, a)
//
// computed for each player on its own. A separating profile in a Lewis game
// scores 1. Both maxima must be positive.
func (c *Calculator[S, M, A]) NormalizedExpectedUtility(sender strategy.Expecter[S, M], receiver strategy.Expecter[M, A]) (game.Payoff, error) {
	acc, _, err := c.expectation(sender, receiver)
	if err != nil {
		return game.Payoff{}, err
	}
	best, err := c.maximum()
	if err != nil {
		return game.Payoff{}, err
	}
	if best.sender.Sign() <= 0 || best.receiver.Sign() <= 0 {
		return game.Payoff{}, fmt.Errorf("%w: maximum expected utility must be positive, got %s", game.ErrInvalidArgument, best.payoff())
	}

	sender64, _ := new(big.Rat).Quo(acc.sender, best.sender).Float64()
	receiver64, _ := new(big.Rat).Quo(acc.receiver, best.receiver).Float64()
	payoff := game.Payoff{Sender: sender64, Receiver: receiver64}
	log.Debug().Msgf("normalized expected utility: %s", payoff)
	return payoff, nil
}

// maximum sums, over states, the prior times each player's best utility.
func (c *Calculator[S, M, A]) maximum() (*accumulator, error) {
	messages := []game.Message[M]{game.None[M]()}
	if c.game.Kind() == game.CostlySignaling {
		messages = messages[:0]
		for _, m := range c.game.Messages() {
			messages = append(messages, game.Some(m))
		}
	}

	space := c.game.StateSpace()
	acc := newAccumulator()
	for _, state := range space.States() {
		prior, err := space.Prior(state)
		if err != nil {
			return nil, err
		}
		if prior.Sign() == 0 {
			continue
		}
		best := game.Symmetric(math.Inf(-1))
		for _, message := range messages {
			for _, action := range c.game.Actions() {
				u, err := c.game.Utility(state, message, action)
				if err != nil {
					return nil, fmt.Errorf("utility of (%v, %v): %w", state, action, err)
				}
				best.Sender = math.Max(best.Sender, u.Sender)
				best.Receiver = math.Max(best.Receiver, u.Receiver)
			}
		}
		if err := acc.add(prior, best); err != nil {
			return nil, fmt.Errorf("best utility at state %v: %w", state, err)
		}
	}
	return acc, nil
}

// SenderEntropy is the mean Shannon entropy of the sender's message
// distributions over all states, divided by log |messages|. It is 0 for a
// pure sender and 1 for one that babbles uniformly.
func (c *Calculator[S, M, A]) SenderEntropy(sender strategy.Expecter[S, M]) (float64, error) {
	return normalizedEntropy(sender, c.game.StateSpace().States(), len(c.game.Messages()))
}

// ReceiverEntropy is SenderEntropy for the receiver: rows are the declared
// messages, normalized by log |actions|.
func (c *Calculator[S, M, A]) ReceiverEntropy(receiver strategy.Expecter[M, A]) (float64, error) {
	return normalizedEntropy(receiver, c.game.Messages(), len(c.game.Actions()))
}

func normalizedEntropy[I, C comparable](s strategy.Expecter[I, C], information []I, choices int) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: strategy is required", game.ErrInvalidArgument)
	}
	if len(information) == 0 {
		return 0, fmt.Errorf("%w: entropy needs at least one information value", game.ErrInvalidArgument)
	}
	if choices < 2 {
		return 0, fmt.Errorf("%w: entropy needs at least two choices, got %d", game.ErrInvalidArgument, choices)
	}

	total := 0.0
	for _, info := range information {
		d, err := s.ExpectedPlay(info)
		if err != nil {
			return 0, fmt.Errorf("entropy at %v: %w", info, err)
		}
		probs := make([]float64, 0, d.Len())
		d.Each(func(_ C, p *big.Rat) {
			f, _ := p.Float64()
			probs = append(probs, f)
		})
		total += stat.Entropy(probs)
	}
	return total / (float64(len(information)) * math.Log(float64(choices))), nil
}
