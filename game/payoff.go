package game

import "fmt"

// Payoff holds what the sender and the receiver earn for one outcome.
// Payoffs may be negative.
type Payoff struct {
	Sender   float64
	Receiver float64
}

// Symmetric returns a payoff where both players earn value.
func Symmetric(value float64) Payoff {
	return Payoff{Sender: value, Receiver: value}
}

func (p Payoff) String() string {
	return fmt.Sprintf("(%g, %g)", p.Sender, p.Receiver)
}
