package strategy

import (
	"signaling/game"

	"golang.org/x/exp/rand"
)

// Strategy maps an information value (a state for the sender, a message for
// the receiver) to a choice. Stochastic strategies draw from src; a strategy
// never reaches for a process-wide random source.
//
// Strategies are immutable, so one instance can be played from many
// goroutines as long as each goroutine passes its own src.
type Strategy[I, C comparable] interface {
	Play(information I, src rand.Source) (C, error)
}

// Expecter exposes the full distribution a strategy plays from, so callers can
// compute exact expectations instead of sampling.
type Expecter[I, C comparable] interface {
	ExpectedPlay(information I) (game.Distribution[C], error)
}

// Profile is a strategy that can be both played and expected.
type Profile[I, C comparable] interface {
	Strategy[I, C]
	Expecter[I, C]
}

var (
	_ Profile[int, int] = (*Pure[int, int])(nil)
	_ Profile[int, int] = (*Behavioral[int, int])(nil)
	_ Profile[int, int] = (*Mixed[int, int])(nil)
)
