package game

import (
	"fmt"

	"signaling/utils"

	"golang.org/x/exp/slices"
)

// Kind names the utility discipline of a signaling game.
type Kind int

const (
	CheapTalk       Kind = iota // messages carry no payoff consequence
	CostlySignaling             // the message is payoff-relevant
)

func (k Kind) String() string {
	switch k {
	case CheapTalk:
		return "cheap talk"
	case CostlySignaling:
		return "costly signaling"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Message is an optional message passed to Game.Utility.
type Message[M any] struct {
	value   M
	present bool
}

func Some[M any](m M) Message[M] {
	return Message[M]{value: m, present: true}
}

func None[M any]() Message[M] {
	return Message[M]{}
}

// Get returns the message and whether one was supplied.
func (m Message[M]) Get() (M, bool) {
	return m.value, m.present
}

// Game is a signaling game: the sender observes a state from the state space
// and sends a message, the receiver answers with an action, and Utility scores
// the outcome for both players.
//
// Utility must be safe for concurrent use.
type Game[S, M, A comparable] interface {
	StateSpace() *StateSpace[S]
	Messages() []M
	Actions() []A
	Kind() Kind
	Utility(state S, message Message[M], action A) (Payoff, error)
}

// CheapTalkRule scores an outcome from the state and the action alone.
type CheapTalkRule[S, A comparable] func(state S, action A) (Payoff, error)

// CostlyRule scores an outcome from the state, the message and the action.
type CostlyRule[S, M, A comparable] func(state S, message M, action A) (Payoff, error)

// sets holds the declared sets shared by both game kinds.
type sets[S, M, A comparable] struct {
	space    *StateSpace[S]
	messages []M
	actions  []A
	actionOf map[A]struct{}
	msgOf    map[M]struct{}
}

func newSets[S, M, A comparable](space *StateSpace[S], messages []M, actions []A) (sets[S, M, A], error) {
	if space == nil {
		return sets[S, M, A]{}, fmt.Errorf("%w: state space cannot be nil", ErrInvalidArgument)
	}
	if len(actions) == 0 {
		return sets[S, M, A]{}, fmt.Errorf("%w: action set cannot be empty", ErrInvalidArgument)
	}
	if m, ok := utils.FirstDuplicate(messages); ok {
		return sets[S, M, A]{}, fmt.Errorf("%w: duplicate message %v", ErrInvalidArgument, m)
	}
	if a, ok := utils.FirstDuplicate(actions); ok {
		return sets[S, M, A]{}, fmt.Errorf("%w: duplicate action %v", ErrInvalidArgument, a)
	}

	s := sets[S, M, A]{
		space:    space,
		messages: slices.Clone(messages),
		actions:  slices.Clone(actions),
		actionOf: make(map[A]struct{}, len(actions)),
		msgOf:    make(map[M]struct{}, len(messages)),
	}
	for _, a := range actions {
		s.actionOf[a] = struct{}{}
	}
	for _, m := range messages {
		s.msgOf[m] = struct{}{}
	}
	return s, nil
}

func (s sets[S, M, A]) StateSpace() *StateSpace[S] {
	return s.space
}

func (s sets[S, M, A]) Messages() []M {
	return slices.Clone(s.messages)
}

func (s sets[S, M, A]) Actions() []A {
	return slices.Clone(s.actions)
}

func (s sets[S, M, A]) check(state S, action A) error {
	if !s.space.Contains(state) {
		return fmt.Errorf("%w: unknown state %v", ErrNotFound, state)
	}
	if _, ok := s.actionOf[action]; !ok {
		return fmt.Errorf("%w: unknown action %v", ErrInvalidArgument, action)
	}
	return nil
}

// CheapTalkGame computes utility from the state and the action; any message
// passed to Utility is ignored.
type CheapTalkGame[S, M, A comparable] struct {
	sets[S, M, A]
	rule CheapTalkRule[S, A]
}

func NewCheapTalkGame[S, M, A comparable](space *StateSpace[S], messages []M, actions []A, rule CheapTalkRule[S, A]) (*CheapTalkGame[S, M, A], error) {
	if rule == nil {
		return nil, fmt.Errorf("%w: utility rule cannot be nil", ErrInvalidArgument)
	}
	s, err := newSets(space, messages, actions)
	if err != nil {
		return nil, err
	}
	return &CheapTalkGame[S, M, A]{sets: s, rule: rule}, nil
}

func (g *CheapTalkGame[S, M, A]) Kind() Kind {
	return CheapTalk
}

func (g *CheapTalkGame[S, M, A]) Utility(state S, _ Message[M], action A) (Payoff, error) {
	return g.UtilityOf(state, action)
}

// UtilityOf is the message-free form of Utility.
func (g *CheapTalkGame[S, M, A]) UtilityOf(state S, action A) (Payoff, error) {
	if err := g.check(state, action); err != nil {
		return Payoff{}, err
	}
	return g.rule(state, action)
}

// CostlySignalingGame computes utility from the state, the message and the
// action. Utility fails when no message is supplied.
type CostlySignalingGame[S, M, A comparable] struct {
	sets[S, M, A]
	rule CostlyRule[S, M, A]
}

func NewCostlySignalingGame[S, M, A comparable](space *StateSpace[S], messages []M, actions []A, rule CostlyRule[S, M, A]) (*CostlySignalingGame[S, M, A], error) {
	if rule == nil {
		return nil, fmt.Errorf("%w: utility rule cannot be nil", ErrInvalidArgument)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: costly signaling needs at least one message", ErrInvalidArgument)
	}
	s, err := newSets(space, messages, actions)
	if err != nil {
		return nil, err
	}
	return &CostlySignalingGame[S, M, A]{sets: s, rule: rule}, nil
}

func (g *CostlySignalingGame[S, M, A]) Kind() Kind {
	return CostlySignaling
}

func (g *CostlySignalingGame[S, M, A]) Utility(state S, message Message[M], action A) (Payoff, error) {
	m, ok := message.Get()
	if !ok {
		return Payoff{}, fmt.Errorf("%w: costly signaling utility needs a message", ErrInvalidArgument)
	}
	if _, ok := g.msgOf[m]; !ok {
		return Payoff{}, fmt.Errorf("%w: unknown message %v", ErrInvalidArgument, m)
	}
	if err := g.check(state, action); err != nil {
		return Payoff{}, err
	}
	return g.rule(state, m, action)
}

var (
	_ Game[int, int, int]   = (*CheapTalkGame[int, int, int])(nil)
	_ Game[int, int, int]   = (*CostlySignalingGame[int, int, int])(nil)
	_ MetricSpace[Fraction] = (*Interval)(nil)
)
